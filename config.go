package lsystem

// RendererConfig holds the drawing parameters of a grammar's render section.
type RendererConfig struct {
	StartingStep        float64 `yaml:"starting_step"`
	StepMultiplier      float64 `yaml:"step_multiplier"`
	StartingAngle       float64 `yaml:"starting_angle"`
	AngleMultiplier     float64 `yaml:"angle_multiplier"`
	StartingLineWidth   float64 `yaml:"starting_line_width"`
	LineWidthMultiplier float64 `yaml:"line_width_multiplier"`
	BackgroundColor     string  `yaml:"background_color"`
	PenColor            string  `yaml:"pen_color"`
}

func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		StartingStep:        100.0,
		StepMultiplier:      1.0,
		StartingAngle:       60.0,
		AngleMultiplier:     1.0,
		StartingLineWidth:   1.0,
		LineWidthMultiplier: 1.0,
		BackgroundColor:     "white",
		PenColor:            "black",
	}
}
