package httpx

// Browser entry points referenced by the edge check and the guards.
const (
	HomePath     = "/"
	LoginPath    = "/login"
	RegisterPath = "/register"
)

// publicPaths is the fixed allow-list of browser paths reachable without
// a token cookie. Authenticated browsers are redirected away from these.
var publicPaths = map[string]bool{
	LoginPath:    true,
	RegisterPath: true,
}

// Defaults for the paginated user listing, matching the upstream.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)
