package constants

// Environment names accepted in config.Env.Env.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)
