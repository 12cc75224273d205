package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // Identity optional
	SecurityAccess                      // Access token required
)

// RouteSecurityConfig maps HTTP route names to their required security level
var RouteSecurityConfig = map[string]SecurityLevel{
	"healthz": SecurityPublic,
	"metrics": SecurityPublic,

	// Anonymous callers get has_applied=false instead of a 401
	"applications.has_applied": SecurityPublic,

	"applications.create":        SecurityAccess,
	"applications.mine":          SecurityAccess,
	"applications.organization":  SecurityAccess,
	"applications.get":           SecurityAccess,
	"applications.update_status": SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := RouteSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown routes
	return SecurityAccess
}
