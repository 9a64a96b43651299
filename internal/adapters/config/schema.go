package config

// File represents the structure of the minish config.yaml file.
// Pointer fields distinguish "unset" from the zero value so defaults survive.
type File struct {
	Prompt    *PromptDTO    `yaml:"prompt"`
	ProcRoot  string        `yaml:"procRoot"`
	Executor  *ExecutorDTO  `yaml:"executor"`
	Log       *LogDTO       `yaml:"log"`
	Telemetry *TelemetryDTO `yaml:"telemetry"`
}

// PromptDTO represents the prompt section.
type PromptDTO struct {
	Color string `yaml:"color"`
	Bold  *bool  `yaml:"bold"`
}

// ExecutorDTO represents the executor section.
type ExecutorDTO struct {
	PTY bool `yaml:"pty"`
}

// LogDTO represents the log section.
type LogDTO struct {
	JSON bool `yaml:"json"`
}

// TelemetryDTO represents the telemetry section.
type TelemetryDTO struct {
	Trace bool `yaml:"trace"`
}
