package state

import (
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"guidec/config"
)

func TestEnvSharedByDerivedContexts(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	EnvFromContext(ctx).Cfg = cfg

	derived, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	env := EnvFromContext(derived)
	if env != EnvFromContext(ctx) {
		t.Fatal("derived context carries different environment")
	}
	if env.Cfg != cfg {
		t.Error("configuration set on parent is not visible through derived context")
	}
	if env.Cfg.Document.SourcePath == "" {
		t.Error("default configuration has no source path")
	}
}

func TestContextWithEnv_Shadows(t *testing.T) {
	outer := ContextWithEnv(context.Background())
	inner := ContextWithEnv(outer)

	if EnvFromContext(outer) == EnvFromContext(inner) {
		t.Error("nested ContextWithEnv reused outer environment")
	}
	if EnvFromContext(inner).Cfg != nil {
		t.Error("fresh environment should not have configuration")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"background", context.Background()},
		{"foreign value", context.WithValue(context.Background(), struct{}{}, &LocalEnv{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("EnvFromContext() did not panic")
				}
			}()
			EnvFromContext(tt.ctx)
		})
	}
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Minute)}
	if got := env.Uptime(); got < time.Minute || got > time.Minute+time.Second {
		t.Errorf("Uptime() = %v, want about a minute", got)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("from standard logger")
	env.RestoreStdLog()
	log.Print("after restore")

	if n := logs.FilterMessage("from standard logger").Len(); n != 1 {
		t.Errorf("redirected %d entries, want 1", n)
	}
	if n := logs.FilterMessage("after restore").Len(); n != 0 {
		t.Errorf("%d entries reached logger after restore", n)
	}
}

func TestLocalEnv_NoLogger(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("redirect installed without logger")
	}
	env.RestoreStdLog()
}

func TestLocalEnv_NoReport(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	// report is optional, everything downstream calls it unconditionally
	env.Rpt.StoreData("config.yaml", []byte("version: 1"))
	if err := env.Rpt.StoreCopy("source", filepath.Join(t.TempDir(), "missing.txt")); err != nil {
		t.Errorf("StoreCopy() on absent report = %v", err)
	}
	if name := env.Rpt.Name(); name != "" {
		t.Errorf("Name() = %q, want empty", name)
	}
	if err := env.Rpt.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
