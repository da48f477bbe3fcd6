package config

// File is the decoded settings file. Pointer and slice fields stay nil when
// the attribute is absent so callers can tell "unset" from a zero value.
type File struct {
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	Format    *string `hcl:"format,optional"`
	Objective *bool   `hcl:"objective,optional"`

	Resolve      *ResolveBlock      `hcl:"resolve,block"`
	Declarations *DeclarationsBlock `hcl:"declarations,block"`
	Solution     *SolutionBlock     `hcl:"solution,block"`
}

// ResolveBlock tunes the resolver.
type ResolveBlock struct {
	MaxDepth     *int    `hcl:"max_depth,optional"`
	DefaultValue *string `hcl:"default_value,optional"`
}

// DeclarationsBlock tunes the declaration parser.
type DeclarationsBlock struct {
	OutputMarkers []string `hcl:"output_markers,optional"`
}

// SolutionBlock tunes the solution parser.
type SolutionBlock struct {
	ReservedKeys []string `hcl:"reserved_keys,optional"`
}
