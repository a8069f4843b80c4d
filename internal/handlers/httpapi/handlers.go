package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/services/notification"
)

type errorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type createCombatBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type setActiveBody struct {
	ID string `json:"id"`
}

type indexBody struct {
	Index int `json:"index"`
}

type amountBody struct {
	Amount int `json:"amount"`
}

type logEntryBody struct {
	Entry map[string]any `json:"entry"`
}

type heroBody struct {
	Name           string                 `json:"name"`
	EntityID       string                 `json:"entity_id"`
	MaxHP          int                    `json:"max_hp"`
	ArmorClass     *int                   `json:"armor_class"`
	HeroicResource *entity.HeroicResource `json:"heroic_resource"`
}

type creatureBody struct {
	Name       string            `json:"name"`
	EntityID   string            `json:"entity_id"`
	MaxHP      int               `json:"max_hp"`
	ArmorClass *int              `json:"armor_class"`
	Threat     entity.ThreatTier `json:"threat"`
}

type updateCombatantBody struct {
	Name           *string                `json:"name"`
	MaxHP          *int                   `json:"max_hp"`
	ArmorClass     *int                   `json:"armor_class"`
	HeroicResource *entity.HeroicResource `json:"heroic_resource"`
	Threat         *entity.ThreatTier     `json:"threat"`
}

type initiativeBody struct {
	Roll1 int `json:"roll1"`
	Roll2 int `json:"roll2"`
}

type conditionBody struct {
	Name     string `json:"name"`
	Duration *int   `json:"duration"`
}

type durationBody struct {
	Duration *int `json:"duration"`
}

type groupBody struct {
	Name         string   `json:"name"`
	CombatantIDs []string `json:"combatant_ids"`
}

// fail reports err and renders it with the status its code maps to
func (r *Router) fail(c *gin.Context, action string, err error) {
	ctx := c.Request.Context()
	code := errors.GetCode(err)

	slog.WarnContext(ctx, "combat request failed",
		"action", action,
		"code", code.String(),
		"error", err)

	r.notifier.Notify(ctx, notification.KindError, fmt.Sprintf("Failed to %s: %s", action, errors.GetMessage(err)))

	c.JSON(code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

// bind decodes the JSON body; a decode failure has already been rendered
// when it returns false
func (r *Router) bind(c *gin.Context, action string, body any) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		r.fail(c, action, errors.InvalidArgumentf("invalid request body: %v", err))
		return false
	}
	return true
}

// respondSession renders a session, or 204 when the session does not exist
func respondSession(c *gin.Context, session *entity.Session) {
	if session == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (r *Router) sessionResult(c *gin.Context, action string, out *combat.SessionOutput, err error) {
	if err != nil {
		r.fail(c, action, err)
		return
	}
	respondSession(c, out.Session)
}

func (r *Router) listCombats(c *gin.Context) {
	out, err := r.combat.ListCombats(c.Request.Context(), &combat.ListCombatsInput{
		Status: entity.Status(c.Query("status")),
	})
	if err != nil {
		r.fail(c, "list combats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": out.Sessions})
}

func (r *Router) createCombat(c *gin.Context) {
	var body createCombatBody
	if !r.bind(c, "create combat", &body) {
		return
	}

	ctx := c.Request.Context()
	out, err := r.combat.CreateCombat(ctx, &combat.CreateCombatInput{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		r.fail(c, "create combat", err)
		return
	}

	r.notifier.Notify(ctx, notification.KindSuccess, fmt.Sprintf("Combat %q created", out.Session.Name))
	c.JSON(http.StatusCreated, out.Session)
}

func (r *Router) getActiveCombat(c *gin.Context) {
	out, err := r.combat.GetActiveCombat(c.Request.Context())
	r.sessionResult(c, "load active combat", out, err)
}

func (r *Router) setActiveCombat(c *gin.Context) {
	var body setActiveBody
	if !r.bind(c, "select combat", &body) {
		return
	}

	out, err := r.combat.SetActiveCombat(c.Request.Context(), &combat.SetActiveCombatInput{ID: body.ID})
	if err != nil {
		r.fail(c, "select combat", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_id": out.ActiveID, "session": out.Session})
}

func (r *Router) syncCombats(c *gin.Context) {
	out, err := r.combat.Sync(c.Request.Context(), &combat.SyncInput{})
	if err != nil {
		r.fail(c, "sync combats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loaded": out.Loaded})
}

func (r *Router) getCombat(c *gin.Context) {
	out, err := r.combat.GetCombat(c.Request.Context(), &combat.SessionInput{ID: c.Param("id")})
	r.sessionResult(c, "load combat", out, err)
}

func (r *Router) deleteCombat(c *gin.Context) {
	ctx := c.Request.Context()
	out, err := r.combat.DeleteCombat(ctx, &combat.DeleteCombatInput{ID: c.Param("id")})
	if err != nil {
		r.fail(c, "delete combat", err)
		return
	}
	if !out.Deleted {
		c.Status(http.StatusNoContent)
		return
	}

	r.notifier.Notify(ctx, notification.KindSuccess, "Combat deleted")
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (r *Router) getSummary(c *gin.Context) {
	out, err := r.combat.GetSummary(c.Request.Context(), &combat.SessionInput{ID: c.Param("id")})
	if err != nil {
		r.fail(c, "load summary", err)
		return
	}
	c.JSON(http.StatusOK, out.Summary)
}

type sessionOp func(ctx context.Context, input *combat.SessionInput) (*combat.SessionOutput, error)

func (r *Router) sessionAction(action string, op sessionOp) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := op(c.Request.Context(), &combat.SessionInput{ID: c.Param("id")})
		r.sessionResult(c, action, out, err)
	}
}

func (r *Router) goToTurn(c *gin.Context) {
	var body indexBody
	if !r.bind(c, "change turn", &body) {
		return
	}
	out, err := r.combat.GoToTurn(c.Request.Context(), &combat.GoToTurnInput{ID: c.Param("id"), Index: body.Index})
	r.sessionResult(c, "change turn", out, err)
}

type pointsOp func(ctx context.Context, input *combat.PointsInput) (*combat.SessionOutput, error)

func (r *Router) points(action string, op pointsOp) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body amountBody
		if !r.bind(c, action, &body) {
			return
		}
		out, err := op(c.Request.Context(), &combat.PointsInput{ID: c.Param("id"), Amount: body.Amount})
		r.sessionResult(c, action, out, err)
	}
}

func (r *Router) addLogEntry(c *gin.Context) {
	var body logEntryBody
	if !r.bind(c, "add log entry", &body) {
		return
	}

	out, err := r.combat.AddLogEntry(c.Request.Context(), &combat.AddLogEntryInput{ID: c.Param("id"), Entry: body.Entry})
	if err != nil {
		r.fail(c, "add log entry", err)
		return
	}
	if out.Entry == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, out.Entry)
}

func (r *Router) addHero(c *gin.Context) {
	var body heroBody
	if !r.bind(c, "add hero", &body) {
		return
	}

	out, err := r.combat.AddHeroCombatant(c.Request.Context(), &combat.AddHeroInput{
		ID:             c.Param("id"),
		Name:           body.Name,
		EntityID:       body.EntityID,
		MaxHP:          body.MaxHP,
		ArmorClass:     body.ArmorClass,
		HeroicResource: body.HeroicResource,
	})
	if err != nil {
		r.fail(c, "add hero", err)
		return
	}
	c.JSON(http.StatusCreated, out.Combatant)
}

func (r *Router) addCreature(c *gin.Context) {
	var body creatureBody
	if !r.bind(c, "add creature", &body) {
		return
	}

	out, err := r.combat.AddCreatureCombatant(c.Request.Context(), &combat.AddCreatureInput{
		ID:         c.Param("id"),
		Name:       body.Name,
		EntityID:   body.EntityID,
		MaxHP:      body.MaxHP,
		ArmorClass: body.ArmorClass,
		Threat:     body.Threat,
	})
	if err != nil {
		r.fail(c, "add creature", err)
		return
	}
	c.JSON(http.StatusCreated, out.Combatant)
}

func (r *Router) addGroup(c *gin.Context) {
	var body groupBody
	if !r.bind(c, "add group", &body) {
		return
	}

	out, err := r.combat.AddGroup(c.Request.Context(), &combat.AddGroupInput{
		ID:           c.Param("id"),
		Name:         body.Name,
		CombatantIDs: body.CombatantIDs,
	})
	if err != nil {
		r.fail(c, "add group", err)
		return
	}
	c.JSON(http.StatusCreated, out.Group)
}

func (r *Router) removeGroup(c *gin.Context) {
	out, err := r.combat.RemoveGroup(c.Request.Context(), &combat.RemoveGroupInput{ID: c.Param("id"), GroupID: c.Param("gid")})
	r.sessionResult(c, "remove group", out, err)
}

func (r *Router) updateCombatant(c *gin.Context) {
	var body updateCombatantBody
	if !r.bind(c, "update combatant", &body) {
		return
	}

	out, err := r.combat.UpdateCombatant(c.Request.Context(), &combat.UpdateCombatantInput{
		ID:             c.Param("id"),
		CombatantID:    c.Param("cid"),
		Name:           body.Name,
		MaxHP:          body.MaxHP,
		ArmorClass:     body.ArmorClass,
		HeroicResource: body.HeroicResource,
		Threat:         body.Threat,
	})
	r.sessionResult(c, "update combatant", out, err)
}

func (r *Router) removeCombatant(c *gin.Context) {
	out, err := r.combat.RemoveCombatant(c.Request.Context(), &combat.CombatantInput{ID: c.Param("id"), CombatantID: c.Param("cid")})
	r.sessionResult(c, "remove combatant", out, err)
}

func (r *Router) rollInitiative(c *gin.Context) {
	var body initiativeBody
	if !r.bind(c, "record initiative", &body) {
		return
	}

	out, err := r.combat.RollInitiative(c.Request.Context(), &combat.RollInitiativeInput{
		ID:          c.Param("id"),
		CombatantID: c.Param("cid"),
		Roll1:       body.Roll1,
		Roll2:       body.Roll2,
	})
	r.sessionResult(c, "record initiative", out, err)
}

func (r *Router) rollInitiativeDice(c *gin.Context) {
	out, err := r.combat.RollInitiativeDice(c.Request.Context(), &combat.CombatantInput{ID: c.Param("id"), CombatantID: c.Param("cid")})
	r.sessionResult(c, "roll initiative", out, err)
}

type amountOp func(ctx context.Context, input *combat.AmountInput) (*combat.SessionOutput, error)

func (r *Router) amount(action string, op amountOp) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body amountBody
		if !r.bind(c, action, &body) {
			return
		}
		out, err := op(c.Request.Context(), &combat.AmountInput{
			ID:          c.Param("id"),
			CombatantID: c.Param("cid"),
			Amount:      body.Amount,
		})
		r.sessionResult(c, action, out, err)
	}
}

func (r *Router) addCondition(c *gin.Context) {
	var body conditionBody
	if !r.bind(c, "add condition", &body) {
		return
	}

	out, err := r.combat.AddCondition(c.Request.Context(), &combat.AddConditionInput{
		ID:          c.Param("id"),
		CombatantID: c.Param("cid"),
		Name:        body.Name,
		Duration:    body.Duration,
	})
	r.sessionResult(c, "add condition", out, err)
}

func (r *Router) updateConditionDuration(c *gin.Context) {
	var body durationBody
	if !r.bind(c, "update condition", &body) {
		return
	}

	out, err := r.combat.UpdateConditionDuration(c.Request.Context(), &combat.UpdateConditionDurationInput{
		ID:          c.Param("id"),
		CombatantID: c.Param("cid"),
		Name:        c.Param("name"),
		Duration:    body.Duration,
	})
	r.sessionResult(c, "update condition", out, err)
}

func (r *Router) removeCondition(c *gin.Context) {
	out, err := r.combat.RemoveCondition(c.Request.Context(), &combat.RemoveConditionInput{
		ID:          c.Param("id"),
		CombatantID: c.Param("cid"),
		Name:        c.Param("name"),
	})
	r.sessionResult(c, "remove condition", out, err)
}
