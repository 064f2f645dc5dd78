package probe

import "github.com/gin-gonic/gin"

// RegisterGin mounts the enabled endpoints as GET routes on a gin router.
// When both endpoints share a path only ready is mounted, matching
// Handle's precedence.
func (p *Probe) RegisterGin(r gin.IRouter) {
	if p.ready.enabled {
		r.GET(p.ready.path, gin.WrapH(p.ReadyHandler()))
	}
	if p.health.enabled && !(p.ready.enabled && p.health.path == p.ready.path) {
		r.GET(p.health.path, gin.WrapH(p.HealthHandler()))
	}
}
