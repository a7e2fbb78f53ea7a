package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.NextflowBin != "nextflow" {
		t.Errorf("NextflowBin = %q, want %q", cfg.NextflowBin, "nextflow")
	}
	if cfg.PipelineDir != "." {
		t.Errorf("PipelineDir = %q, want %q", cfg.PipelineDir, ".")
	}
	if cfg.WorkDir != "." {
		t.Errorf("WorkDir = %q, want %q", cfg.WorkDir, ".")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestDefault_EnvOverrides(t *testing.T) {
	t.Setenv("ONEROOF_NEXTFLOW", "/opt/nextflow/bin/nextflow")
	t.Setenv("ONEROOF_WORKDIR", "/scratch/runs")
	t.Setenv("ONEROOF_LOG_LEVEL", "debug")

	cfg := Default()

	if cfg.NextflowBin != "/opt/nextflow/bin/nextflow" {
		t.Errorf("NextflowBin = %q, want env override", cfg.NextflowBin)
	}
	if cfg.WorkDir != "/scratch/runs" {
		t.Errorf("WorkDir = %q, want env override", cfg.WorkDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want env override", cfg.LogLevel)
	}
	if cfg.PipelineDir != "." {
		t.Errorf("PipelineDir = %q, want default when env unset", cfg.PipelineDir)
	}
}
