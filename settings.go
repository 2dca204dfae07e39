/*
   Copyright 2025 The TYL Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tylerrors

import (
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap/zapcore"
)

// Config holds process-wide behavior knobs, read once from the environment.
//
//	TYL_ERROR_MAX_RETRIES  attempt budget for ShouldRetry        (default 3)
//	TYL_ERROR_LOG_ERRORS   whether zapx.Log emits anything        (default true)
//	TYL_ERROR_LOG_LEVEL    zap level name for emitted log entries (default error)
//
// Unparseable values fall back to the default rather than failing startup;
// an error library must not itself be a source of boot errors.
type Config struct {
	MaxRetries int
	LogErrors  bool
	LogLevel   zapcore.Level
}

// Settings returns the process-wide configuration. The environment is read
// on first call and cached for the life of the process.
func Settings() Config {
	return loadSettings()
}

var loadSettings = sync.OnceValue(func() Config {
	return configFromEnv(os.Getenv)
})

func configFromEnv(getenv func(string) string) Config {
	cfg := Config{
		MaxRetries: 3,
		LogErrors:  true,
		LogLevel:   zapcore.ErrorLevel,
	}

	if v := getenv("TYL_ERROR_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := getenv("TYL_ERROR_LOG_ERRORS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogErrors = b
		}
	}
	if v := getenv("TYL_ERROR_LOG_LEVEL"); v != "" {
		if lvl, err := zapcore.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg
}
