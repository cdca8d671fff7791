package app

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"quizhost/internal/handlers"
	"quizhost/internal/logger"
	"quizhost/internal/repository"
	"quizhost/internal/services"
	"quizhost/internal/websocket"
)

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	repo     *repository.Repository
}

// New creates and initializes a new application instance
func New(log logger.Logger, dbPath string, templatesFS, staticFS fs.FS) (*App, error) {
	repo, err := repository.New(dbPath)
	if err != nil {
		return nil, err
	}

	// Initialize services
	bank := services.NewQuestionBank(log, repo)
	if err := bank.Load(context.Background()); err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to load question set: %w", err)
	}
	session := services.NewSessionService(log, bank)

	// Initialize WebSocket hub with DI
	hub := websocket.New(log, session)
	hub.Start()
	session.SetBroadcaster(hub)

	// Create static file server
	staticServer := handlers.NewStaticServer(staticFS)

	// Initialize handlers with hub
	h, err := handlers.New(
		session,
		bank,
		templatesFS,
		staticServer,
		hub,
		log,
		"http://localhost:8080",
	)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		log:      log,
		handlers: h,
		repo:     repo,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close performs graceful shutdown of app resources
func (a *App) Close() {
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.log.Warn("Failed to close repository", "error", err)
		}
	}
}

// BaseURL returns the externally reachable URL players should use
func (a *App) BaseURL() string {
	return a.handlers.BaseURL
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	// QR codes need an address phones on the LAN can reach, so prefer
	// a private interface IP over localhost
	ip := getPreferredIP(realNetworkProvider{})
	baseURL := fmt.Sprintf("http://%s%s", ip, addr)
	a.handlers.BaseURL = baseURL

	a.log.Info("Server starting", "url", baseURL)
	a.log.Info("Host URL", "url", baseURL+"/admin")
	a.log.Info("Join URL", "url", baseURL+"/join")
	return http.ListenAndServe(addr, a.Router())
}

// networkInterface wraps net.Interface for testing
type networkInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

// realInterface wraps a real net.Interface
type realInterface struct {
	iface net.Interface
}

func (r realInterface) Flags() net.Flags {
	return r.iface.Flags
}

func (r realInterface) Addrs() ([]net.Addr, error) {
	return r.iface.Addrs()
}

// networkProvider is an interface for getting network interfaces (for testing)
type networkProvider interface {
	Interfaces() ([]networkInterface, error)
}

// realNetworkProvider implements networkProvider using actual net package
type realNetworkProvider struct{}

func (realNetworkProvider) Interfaces() ([]networkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	result := make([]networkInterface, len(ifaces))
	for i, iface := range ifaces {
		result[i] = realInterface{iface: iface}
	}
	return result, nil
}

// getPreferredIP returns the best IP address for LAN access.
// Prefers private network addresses (192.168.x.x, 10.x.x.x, 172.16-31.x.x).
// Falls back to localhost if no suitable address is found.
func getPreferredIP(provider networkProvider) string {
	ifaces, err := provider.Interfaces()
	if err != nil {
		return "localhost"
	}

	var candidates []net.IP

	for _, iface := range ifaces {
		// Skip down, loopback, and point-to-point interfaces
		flags := iface.Flags()
		if flags&net.FlagUp == 0 || flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			// Only consider IPv4 addresses
			if ip == nil || ip.To4() == nil {
				continue
			}

			// Skip loopback
			if ip.IsLoopback() {
				continue
			}

			candidates = append(candidates, ip)
		}
	}

	// Prefer private network addresses
	for _, ip := range candidates {
		ipStr := ip.String()
		if strings.HasPrefix(ipStr, "192.168.") ||
			strings.HasPrefix(ipStr, "10.") ||
			isPrivate172(ip) {
			return ipStr
		}
	}

	// Fall back to any non-loopback if no private address found
	if len(candidates) > 0 {
		return candidates[0].String()
	}

	return "localhost"
}

// isPrivate172 checks if IP is in 172.16.0.0/12 range
func isPrivate172(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31
	}
	return false
}
