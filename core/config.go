package core

// Config is a complete logger configuration. It is the shape of both the
// library defaults and the runtime defaults, and of the effective
// configuration computed for a single logger.
type Config struct {
	Level         Level
	PrefixEnabled bool
	PrefixFormat  string
	// Placeholders maps template tokens (e.g. "%appName") to their values.
	Placeholders map[string]string
}

// PartialConfig is a configuration with every field optional. A nil
// pointer or a nil Placeholders map means the field is absent. A non-nil
// empty map is present and empty.
type PartialConfig struct {
	Level         *Level
	PrefixEnabled *bool
	PrefixFormat  *string
	Placeholders  map[string]string
}

// Ptr returns a pointer to v, for building PartialConfig literals.
func Ptr[T any](v T) *T {
	return &v
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Placeholders = cloneMap(c.Placeholders)
	if c.Placeholders == nil {
		c.Placeholders = map[string]string{}
	}
	return c
}

// Apply returns a copy of c with every field present in p overwritten.
// Placeholders, when present, replace the whole map.
func (c Config) Apply(p PartialConfig) Config {
	out := c.Clone()
	if p.Level != nil {
		out.Level = *p.Level
	}
	if p.PrefixEnabled != nil {
		out.PrefixEnabled = *p.PrefixEnabled
	}
	if p.PrefixFormat != nil {
		out.PrefixFormat = *p.PrefixFormat
	}
	if p.Placeholders != nil {
		out.Placeholders = cloneMap(p.Placeholders)
	}
	return out
}

// Partial converts c into a PartialConfig with every field present.
func (c Config) Partial() PartialConfig {
	placeholders := cloneMap(c.Placeholders)
	if placeholders == nil {
		placeholders = map[string]string{}
	}
	return PartialConfig{
		Level:         Ptr(c.Level),
		PrefixEnabled: Ptr(c.PrefixEnabled),
		PrefixFormat:  Ptr(c.PrefixFormat),
		Placeholders:  placeholders,
	}
}

// Clone returns a deep copy of p. Absent fields stay absent.
func (p PartialConfig) Clone() PartialConfig {
	out := PartialConfig{Placeholders: cloneMap(p.Placeholders)}
	if p.Level != nil {
		out.Level = Ptr(*p.Level)
	}
	if p.PrefixEnabled != nil {
		out.PrefixEnabled = Ptr(*p.PrefixEnabled)
	}
	if p.PrefixFormat != nil {
		out.PrefixFormat = Ptr(*p.PrefixFormat)
	}
	return out
}

// Merge returns a copy of p with every field present in next overwritten.
// Fields absent from next keep their current value.
func (p PartialConfig) Merge(next PartialConfig) PartialConfig {
	out := p.Clone()
	if next.Level != nil {
		out.Level = Ptr(*next.Level)
	}
	if next.PrefixEnabled != nil {
		out.PrefixEnabled = Ptr(*next.PrefixEnabled)
	}
	if next.PrefixFormat != nil {
		out.PrefixFormat = Ptr(*next.PrefixFormat)
	}
	if next.Placeholders != nil {
		out.Placeholders = cloneMap(next.Placeholders)
	}
	return out
}

// IsEmpty reports whether no field of p is present.
func (p PartialConfig) IsEmpty() bool {
	return p.Level == nil && p.PrefixEnabled == nil && p.PrefixFormat == nil && p.Placeholders == nil
}

// Resolve computes the effective configuration of a logger from the
// runtime defaults and that logger's override. Scalar fields take the
// override when present. Placeholders are the union of both maps, with
// the override winning on key collision. The result never aliases the
// inputs.
func Resolve(defaults Config, override PartialConfig) Config {
	eff := Config{
		Level:         defaults.Level,
		PrefixEnabled: defaults.PrefixEnabled,
		PrefixFormat:  defaults.PrefixFormat,
		Placeholders:  make(map[string]string, len(defaults.Placeholders)+len(override.Placeholders)),
	}
	if override.Level != nil {
		eff.Level = *override.Level
	}
	if override.PrefixEnabled != nil {
		eff.PrefixEnabled = *override.PrefixEnabled
	}
	if override.PrefixFormat != nil {
		eff.PrefixFormat = *override.PrefixFormat
	}
	for k, v := range defaults.Placeholders {
		eff.Placeholders[k] = v
	}
	for k, v := range override.Placeholders {
		eff.Placeholders[k] = v
	}
	return eff
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
