package cli

import "gtp/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers    int
	TestPath   string
	NameFilter string
	RunFilter  string
	TestCases  bool
	FailFast   bool
	History    bool
	OpenView   bool
	Limit      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:    f.Workers,
		TestPath:   f.TestPath,
		NameFilter: f.NameFilter,
		RunFilter:  f.RunFilter,
		TestCases:  f.TestCases,
		FailFast:   f.FailFast,
		History:    f.History,
		OpenView:   f.OpenView,
	}
}
