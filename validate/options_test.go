package validate

import "testing"

func TestApplyOptions_Defaults(t *testing.T) {
	cfg := applyOptions(nil)
	if cfg.maxDepth != 100 {
		t.Fatalf("expected default max depth 100, got %d", cfg.maxDepth)
	}
	if cfg.strictMode || cfg.allowUnknownFields || cfg.allowEmptyElements {
		t.Fatal("boolean options should default to false")
	}
}

func TestApplyOptions_IgnoresNonPositiveMaxDepth(t *testing.T) {
	cfg := applyOptions([]Option{WithMaxValidationDepth(0), WithMaxValidationDepth(-5)})
	if cfg.maxDepth != 100 {
		t.Fatalf("non-positive max depth should be ignored, got %d", cfg.maxDepth)
	}
}

func TestApplyOptions_Overrides(t *testing.T) {
	cfg := applyOptions([]Option{
		WithStrictMode(true),
		WithAllowUnknownFields(true),
		WithAllowEmptyElements(true),
		WithMaxValidationDepth(5),
	})
	if !cfg.strictMode || !cfg.allowUnknownFields || !cfg.allowEmptyElements {
		t.Fatal("expected all boolean options set")
	}
	if cfg.maxDepth != 5 {
		t.Fatalf("expected max depth 5, got %d", cfg.maxDepth)
	}
}
