package routes

import (
	"legendstats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.MatchHandler:
			r.registerMatchHandler(handler)
		case *handlers.TierlistHandler:
			r.registerTierlistHandler(handler)
		case *handlers.LiveHandler:
			r.registerLiveHandler(handler)
		case *handlers.LeaderboardHandler:
			r.registerLeaderboardHandler(handler)
		case *handlers.PatchHandler:
			r.registerPatchHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	players := r.api.Group("/jugadores")
	{
		players.GET("/:region/:gameName/:tagLine", handler.GetProfile)
	}
	r.api.GET("/buscar", handler.Search)
}

// Register the match handler.
func (r *Router) registerMatchHandler(handler *handlers.MatchHandler) {
	matches := r.api.Group("/partidas")
	{
		matches.GET("/:region/jugador/:puuid", handler.GetHistory)
		matches.GET("/:region/detalle/:matchId", handler.GetMatch)
	}
}

// Register the tierlist handler.
func (r *Router) registerTierlistHandler(handler *handlers.TierlistHandler) {
	tierlist := r.api.Group("/campeones")
	{
		tierlist.GET("/tierlist", handler.GetTierlist)
	}
}

// Register the live game handler.
func (r *Router) registerLiveHandler(handler *handlers.LiveHandler) {
	live := r.api.Group("/envivo")
	{
		live.GET("/:region/:puuid", handler.GetLiveGame)
	}
}

// Register the leaderboard handler.
func (r *Router) registerLeaderboardHandler(handler *handlers.LeaderboardHandler) {
	leaderboard := r.api.Group("/clasificacion")
	{
		leaderboard.GET("/:region", handler.GetLeaderboard)
	}
}

// Register the patch note handler.
func (r *Router) registerPatchHandler(handler *handlers.PatchHandler) {
	patches := r.api.Group("/parches")
	{
		patches.GET("", handler.ListPatchNotes)
		patches.GET("/:version", handler.GetPatchNote)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
