package config

// File represents the structure of the otpsync.yaml options file.
// Pointer fields distinguish "not set" from an explicit false/zero so
// flag > file > default precedence resolves correctly.
type File struct {
	BaseDir          string `yaml:"baseDir"`
	FeedList         string `yaml:"feedList"`
	OTPCommand       string `yaml:"otpCommand"`
	LogDir           string `yaml:"logDir"`
	ForceRebuild     *bool  `yaml:"forceRebuild"`
	KeepFailedGraphs *bool  `yaml:"keepFailedGraphs"`
	Parallelism      *int   `yaml:"parallelism"`
	HTTPTimeout      string `yaml:"httpTimeout"`
}
