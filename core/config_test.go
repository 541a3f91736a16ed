package core

import (
	"testing"
)

func baseConfig() Config {
	return Config{
		Level:         InfoLevel,
		PrefixEnabled: true,
		PrefixFormat:  "(%loggerName) %logLevel:",
		Placeholders:  map[string]string{"%appName": "root", "%custom": "default"},
	}
}

func TestResolve_NoOverride(t *testing.T) {
	d := baseConfig()
	eff := Resolve(d, PartialConfig{})

	if eff.Level != d.Level || eff.PrefixEnabled != d.PrefixEnabled || eff.PrefixFormat != d.PrefixFormat {
		t.Errorf("Expected defaults, got %+v", eff)
	}
	if len(eff.Placeholders) != 2 || eff.Placeholders["%appName"] != "root" {
		t.Errorf("Expected default placeholders, got %v", eff.Placeholders)
	}
}

func TestResolve_OverrideWins(t *testing.T) {
	d := baseConfig()
	eff := Resolve(d, PartialConfig{
		Level:         Ptr(DebugLevel),
		PrefixEnabled: Ptr(false),
		PrefixFormat:  Ptr("<%loggerName>"),
	})

	if eff.Level != DebugLevel {
		t.Errorf("Expected DebugLevel, got %v", eff.Level)
	}
	if eff.PrefixEnabled {
		t.Error("Expected prefix disabled by override")
	}
	if eff.PrefixFormat != "<%loggerName>" {
		t.Errorf("Expected override format, got %q", eff.PrefixFormat)
	}
}

func TestResolve_PlaceholdersUnion(t *testing.T) {
	d := baseConfig()
	eff := Resolve(d, PartialConfig{
		Placeholders: map[string]string{"%custom": "override", "%extra": "x"},
	})

	want := map[string]string{"%appName": "root", "%custom": "override", "%extra": "x"}
	if len(eff.Placeholders) != len(want) {
		t.Fatalf("Expected %v, got %v", want, eff.Placeholders)
	}
	for k, v := range want {
		if eff.Placeholders[k] != v {
			t.Errorf("Placeholders[%q] = %q, want %q", k, eff.Placeholders[k], v)
		}
	}
}

func TestResolve_DoesNotAlias(t *testing.T) {
	d := baseConfig()
	o := PartialConfig{Placeholders: map[string]string{"%custom": "o"}}
	eff := Resolve(d, o)

	eff.Placeholders["%appName"] = "changed"
	eff.Placeholders["%custom"] = "changed"

	if d.Placeholders["%appName"] != "root" {
		t.Error("Resolve result aliases the defaults map")
	}
	if o.Placeholders["%custom"] != "o" {
		t.Error("Resolve result aliases the override map")
	}
}

func TestConfig_ApplyReplacesPlaceholders(t *testing.T) {
	d := baseConfig()
	next := d.Apply(PartialConfig{
		PrefixFormat: Ptr("[%new][%logLevel]"),
		Placeholders: map[string]string{"%new": "value"},
	})

	if next.Level != InfoLevel || !next.PrefixEnabled {
		t.Errorf("Absent fields must be kept, got %+v", next)
	}
	if next.PrefixFormat != "[%new][%logLevel]" {
		t.Errorf("Expected new format, got %q", next.PrefixFormat)
	}
	if len(next.Placeholders) != 1 || next.Placeholders["%new"] != "value" {
		t.Errorf("Expected placeholders replaced wholesale, got %v", next.Placeholders)
	}
	if len(d.Placeholders) != 2 {
		t.Error("Apply modified its receiver")
	}
}

func TestConfig_ApplyEmptyPlaceholders(t *testing.T) {
	next := baseConfig().Apply(PartialConfig{Placeholders: map[string]string{}})
	if next.Placeholders == nil || len(next.Placeholders) != 0 {
		t.Errorf("Expected empty placeholders, got %v", next.Placeholders)
	}
}

func TestPartialConfig_Merge(t *testing.T) {
	stored := PartialConfig{
		Level:        Ptr(DebugLevel),
		PrefixFormat: Ptr("<stick %loggerName %logLevel>"),
	}

	merged := stored.Merge(PartialConfig{PrefixEnabled: Ptr(false)})

	if merged.Level == nil || *merged.Level != DebugLevel {
		t.Errorf("Expected level kept, got %v", merged.Level)
	}
	if merged.PrefixFormat == nil || *merged.PrefixFormat != "<stick %loggerName %logLevel>" {
		t.Errorf("Expected format kept, got %v", merged.PrefixFormat)
	}
	if merged.PrefixEnabled == nil || *merged.PrefixEnabled {
		t.Errorf("Expected prefixEnabled=false, got %v", merged.PrefixEnabled)
	}
	if merged.Placeholders != nil {
		t.Errorf("Expected placeholders absent, got %v", merged.Placeholders)
	}

	// the stored value is untouched and unshared
	*merged.Level = ErrorLevel
	if *stored.Level != DebugLevel {
		t.Error("Merge result shares pointers with its receiver")
	}
}

func TestPartialConfig_CloneAndIsEmpty(t *testing.T) {
	if !(PartialConfig{}).IsEmpty() {
		t.Error("Expected zero PartialConfig to be empty")
	}

	p := baseConfig().Partial()
	if p.IsEmpty() {
		t.Error("Expected Partial() to set every field")
	}

	c := p.Clone()
	c.Placeholders["%appName"] = "x"
	*c.PrefixFormat = "y"
	if p.Placeholders["%appName"] != "root" || *p.PrefixFormat != "(%loggerName) %logLevel:" {
		t.Error("Clone shares state with the original")
	}
}

func TestConfig_CloneNilPlaceholders(t *testing.T) {
	c := Config{Level: WarnLevel}.Clone()
	if c.Placeholders == nil {
		t.Error("Expected Clone to allocate an empty placeholder map")
	}
}
