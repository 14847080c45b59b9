package model

// Scope carries the per-request user identity. Auth is handled outside this
// service; callers supply the user id.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
