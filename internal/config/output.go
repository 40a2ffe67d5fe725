package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text or JSON reports
	Format ReportFormat

	// ShowBoard prints an ASCII board after every ply
	ShowBoard bool

	// ShowFEN includes the FEN of every position
	ShowFEN bool

	// ShowKeys includes the Zobrist key of every position
	ShowKeys bool

	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  TextReport,
		ShowFEN: true,
	}
}
