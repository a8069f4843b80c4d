// Package httpapi serves the combat session manager to the browser as a JSON
// API, with the live feed mounted at /api/v1/ws
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/handlers/feed"
	"github.com/KirkDiggler/rpg-campaign-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/services/notification"
)

// Config holds dependencies for the router
type Config struct {
	CombatService combat.Service
	// Feed is optional; without it /api/v1/ws is not mounted
	Feed *feed.Hub
	// Notifier defaults to notification.Nop
	Notifier notification.Notifier
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CombatService == nil {
		return errors.InvalidArgument("combat service is required")
	}
	return nil
}

// Router is the HTTP API
type Router struct {
	engine   *gin.Engine
	combat   combat.Service
	feed     *feed.Hub
	notifier notification.Notifier
}

// NewRouter builds the gin engine and its routes
func NewRouter(cfg *Config) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())

	r := &Router{
		engine:   engine,
		combat:   cfg.CombatService,
		feed:     cfg.Feed,
		notifier: cfg.Notifier,
	}
	if r.notifier == nil {
		r.notifier = notification.Nop
	}

	r.setupRoutes()

	return r, nil
}

// Handler returns the http.Handler serving the API
func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.healthCheck)

	v1 := r.engine.Group("/api/v1")
	if r.feed != nil {
		v1.GET("/ws", func(c *gin.Context) {
			r.feed.ServeWS(c.Writer, c.Request)
		})
	}

	combats := v1.Group("/combats")
	{
		combats.GET("", r.listCombats)
		combats.POST("", r.createCombat)
		combats.GET("/active", r.getActiveCombat)
		combats.PUT("/active", r.setActiveCombat)
		combats.POST("/sync", r.syncCombats)

		session := combats.Group("/:id")
		{
			session.GET("", r.getCombat)
			session.DELETE("", r.deleteCombat)
			session.GET("/summary", r.getSummary)

			session.POST("/start", r.sessionAction("start combat", r.combat.StartCombat))
			session.POST("/pause", r.sessionAction("pause combat", r.combat.PauseCombat))
			session.POST("/resume", r.sessionAction("resume combat", r.combat.ResumeCombat))
			session.POST("/end", r.sessionAction("end combat", r.combat.EndCombat))
			session.POST("/next-turn", r.sessionAction("advance turn", r.combat.NextTurn))
			session.POST("/previous-turn", r.sessionAction("go back a turn", r.combat.PreviousTurn))
			session.POST("/sort", r.sessionAction("sort by initiative", r.combat.SortByInitiative))
			session.POST("/tick-conditions", r.sessionAction("tick conditions", r.combat.TickConditions))
			session.POST("/go-to-turn", r.goToTurn)

			session.PUT("/hero-points", r.points("update hero points", r.combat.UpdateHeroPoints))
			session.PUT("/victory-points", r.points("update victory points", r.combat.UpdateVictoryPoints))
			session.POST("/log", r.addLogEntry)

			session.POST("/heroes", r.addHero)
			session.POST("/creatures", r.addCreature)
			session.POST("/groups", r.addGroup)
			session.DELETE("/groups/:gid", r.removeGroup)

			combatant := session.Group("/combatants/:cid")
			{
				combatant.PATCH("", r.updateCombatant)
				combatant.DELETE("", r.removeCombatant)
				combatant.POST("/initiative", r.rollInitiative)
				combatant.POST("/initiative/roll", r.rollInitiativeDice)
				combatant.POST("/damage", r.amount("apply damage", r.combat.ApplyDamage))
				combatant.POST("/healing", r.amount("apply healing", r.combat.ApplyHealing))
				combatant.POST("/temp-hp", r.amount("set temporary hp", r.combat.SetTempHP))
				combatant.POST("/conditions", r.addCondition)
				combatant.PATCH("/conditions/:name", r.updateConditionDuration)
				combatant.DELETE("/conditions/:name", r.removeCondition)
			}
		}
	}
}

func (r *Router) healthCheck(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if r.feed != nil {
		body["feed_clients"] = r.feed.Count()
	}
	c.JSON(http.StatusOK, body)
}

// requestLogger logs each request with slog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		slog.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
