package mapper

import (
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/the-yaml-life/tyl-errors/apis"
	"github.com/the-yaml-life/tyl-errors/kind"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check canonical defaults from defaults.go
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k, "")
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.Validation, 400, codes.InvalidArgument)
	check(kind.NotFound, 404, codes.NotFound)
	check(kind.Database, 503, codes.Unavailable)
	check(kind.Network, 503, codes.Unavailable)
	check(kind.Internal, 500, codes.Internal)
	check(kind.Custom, 500, codes.Unknown)
}

func TestUnknownKind_UsesFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Kind("cosmic_ray"), "")
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback expected; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.Custom, 500),                 // default
		WithHTTPPrefix(kind.Custom, "rate_limited", 429),  // prefix
		WithHTTPOverride(kind.Custom, 418),                // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Custom, "rate_limited.burst")
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(kind.Custom, int(codes.Unknown)),
		WithGRPCPrefix(kind.Custom, "rate_limited", int(codes.ResourceExhausted)),
		WithGRPCOverride(kind.Custom, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Custom, "rate_limited.burst")
	if st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Custom, "upstream", 502),
		WithHTTPPrefix(kind.Custom, "upstream.payments", 402),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// LPM should pick the longer "upstream.payments"
	st := m.Status(kind.Custom, "upstream.payments.declined")
	if st.HTTP != 402 {
		t.Fatalf("LPM failed: got %d, want 402", st.HTTP)
	}
	// make sure we don't cross segment boundaries ("rate" must not match "rate_limited")
	m2, _ := New(WithHTTPPrefix(kind.Custom, "rate_limited", 429))
	st2 := m2.Status(kind.Custom, "rate")
	if st2.HTTP == 429 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Custom, "upstream.*.throttled", 503),
		WithHTTPPrefix(kind.Custom, "upstream.payments.throttled", 429), // exact should win at same depth
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := m.Status(kind.Custom, "upstream.payments.throttled")
	if a.HTTP != 429 {
		t.Fatalf("exact must beat wildcard; got %d", a.HTTP)
	}
	b := m.Status(kind.Custom, "upstream.search.throttled.hard")
	if b.HTTP != 503 {
		t.Fatalf("wildcard match failed; got %d, want 503", b.HTTP)
	}
	// wildcard matches exactly one segment, not zero
	c := m.Status(kind.Custom, "upstream.throttled")
	if c.HTTP == 503 {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Custom, "  RATE-LIMITED.BURST  ", 429),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Custom, "rate_limited.burst.hard")
	if st.HTTP != 429 {
		t.Fatalf("normalized prefix should match; got %d", st.HTTP)
	}
}

func TestNormalization_In_Lookup(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Custom, "rate_limited", 429),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// a classifier reporting a dashed, mixed-case name still matches
	st := m.Status(kind.Custom, "Rate-Limited")
	if st.HTTP != 429 {
		t.Fatalf("lookup normalization failed; got %d", st.HTTP)
	}
}

func TestEmptyCategory_UsesDefaultAndOverride(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.Network, 504),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Network, "")
	if st.HTTP != 504 {
		t.Fatalf("empty category should use default; got %d, want 504", st.HTTP)
	}

	m2, err := New(
		WithHTTPOverride(kind.NotFound, 410),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st2 := m2.Status(kind.NotFound, "")
	if st2.HTTP != 410 {
		t.Fatalf("override must win; got %d, want 410", st2.HTTP)
	}
}

func TestInvalidPrefix_FailsBuild(t *testing.T) {
	if _, err := New(WithHTTPPrefix(kind.Custom, "a..b", 500)); err == nil {
		t.Fatalf("empty segment must fail the build")
	}
	if _, err := New(WithGRPCPrefix(kind.Custom, "*", int(codes.Internal))); err == nil {
		t.Fatalf("wildcard-only prefix must fail the build")
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Custom, "rate_limited", 429),
		WithGRPCPrefix(kind.Custom, "rate_limited", int(codes.ResourceExhausted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(kind.Custom, "rate_limited.burst")
	if !strings.Contains(exp, `source=prefix`) {
		t.Fatalf("Explain must include source=prefix:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="rate_limited"`) {
		t.Fatalf("Explain must include matched pattern:\n%s", exp)
	}
	if !strings.Contains(exp, `grpc:`) || !strings.Contains(exp, `http:`) {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(kind.Custom, "rate_limited", 429),
		WithHTTPOverride(kind.Network, 502),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(kind.Custom, "rate_limited.burst")
				_ = m.Status(kind.Network, "")
				_ = m.Status(kind.Validation, "field.age")
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.Validation, "field.age")
	}
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m, _ := New(
		WithHTTPPrefix(kind.Custom, "rate_limited", 429),
		WithGRPCPrefix(kind.Custom, "rate_limited", int(codes.ResourceExhausted)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.Custom, "rate_limited.burst")
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m, _ := New(
		WithHTTPOverride(kind.Network, 502),
		WithGRPCOverride(kind.Network, int(codes.Unavailable)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.Network, "flaky")
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
