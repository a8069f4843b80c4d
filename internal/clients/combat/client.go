// Package combat is a client for the combat gRPC service
package combat

//go:generate mockgen -destination=mock/mock_client.go -package=combatclientmock github.com/KirkDiggler/rpg-campaign-api/internal/clients/combat Client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-campaign-api/internal/handlers/combat/v1alpha1"
)

// DefaultTimeout bounds each call when the caller's context has no deadline
const DefaultTimeout = 10 * time.Second

// Client defines the combat service operations available to tools
type Client interface {
	CreateCombat(ctx context.Context, req *v1alpha1.CreateCombatRequest) (*v1alpha1.SessionResponse, error)
	DeleteCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.DeleteCombatResponse, error)
	GetCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	ListCombats(ctx context.Context, req *v1alpha1.ListCombatsRequest) (*v1alpha1.ListCombatsResponse, error)
	SetActiveCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SetActiveCombatResponse, error)
	GetActiveCombat(ctx context.Context, req *v1alpha1.EmptyRequest) (*v1alpha1.SessionResponse, error)
	Sync(ctx context.Context, req *v1alpha1.EmptyRequest) (*v1alpha1.SyncResponse, error)
	StartCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	PauseCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	ResumeCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	EndCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	NextTurn(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	PreviousTurn(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	GoToTurn(ctx context.Context, req *v1alpha1.GoToTurnRequest) (*v1alpha1.SessionResponse, error)
	RollInitiative(ctx context.Context, req *v1alpha1.RollInitiativeRequest) (*v1alpha1.SessionResponse, error)
	RollInitiativeDice(ctx context.Context, req *v1alpha1.CombatantRequest) (*v1alpha1.SessionResponse, error)
	SortByInitiative(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	AddHeroCombatant(ctx context.Context, req *v1alpha1.AddHeroRequest) (*v1alpha1.AddCombatantResponse, error)
	AddCreatureCombatant(ctx context.Context, req *v1alpha1.AddCreatureRequest) (*v1alpha1.AddCombatantResponse, error)
	RemoveCombatant(ctx context.Context, req *v1alpha1.CombatantRequest) (*v1alpha1.SessionResponse, error)
	UpdateCombatant(ctx context.Context, req *v1alpha1.UpdateCombatantRequest) (*v1alpha1.SessionResponse, error)
	AddGroup(ctx context.Context, req *v1alpha1.AddGroupRequest) (*v1alpha1.AddGroupResponse, error)
	RemoveGroup(ctx context.Context, req *v1alpha1.RemoveGroupRequest) (*v1alpha1.SessionResponse, error)
	ApplyDamage(ctx context.Context, req *v1alpha1.AmountRequest) (*v1alpha1.SessionResponse, error)
	ApplyHealing(ctx context.Context, req *v1alpha1.AmountRequest) (*v1alpha1.SessionResponse, error)
	SetTempHP(ctx context.Context, req *v1alpha1.AmountRequest) (*v1alpha1.SessionResponse, error)
	AddCondition(ctx context.Context, req *v1alpha1.ConditionRequest) (*v1alpha1.SessionResponse, error)
	RemoveCondition(ctx context.Context, req *v1alpha1.ConditionRequest) (*v1alpha1.SessionResponse, error)
	UpdateConditionDuration(ctx context.Context, req *v1alpha1.ConditionRequest) (*v1alpha1.SessionResponse, error)
	TickConditions(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)
	UpdateHeroPoints(ctx context.Context, req *v1alpha1.PointsRequest) (*v1alpha1.SessionResponse, error)
	UpdateVictoryPoints(ctx context.Context, req *v1alpha1.PointsRequest) (*v1alpha1.SessionResponse, error)
	AddLogEntry(ctx context.Context, req *v1alpha1.AddLogEntryRequest) (*v1alpha1.AddLogEntryResponse, error)
	GetSummary(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SummaryResponse, error)

	Close() error
}

// Config holds the settings for a gRPC client
type Config struct {
	// Target is the server address, for example localhost:50051
	Target string
	// Timeout defaults to DefaultTimeout
	Timeout time.Duration
	// DialOptions replace the default insecure transport credentials
	DialOptions []grpc.DialOption
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Target", c.Target, vb)
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	conn    grpc.ClientConnInterface
	closer  func() error
	timeout time.Duration
}

// New dials the combat service
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	opts := cfg.DialOptions
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}

	conn, err := grpc.NewClient(cfg.Target, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create client for %s", cfg.Target)
	}

	return &client{conn: conn, closer: conn.Close, timeout: timeoutOrDefault(cfg.Timeout)}, nil
}

// NewFromConn wraps an existing connection; Close leaves the connection open
func NewFromConn(conn grpc.ClientConnInterface, timeout time.Duration) Client {
	return &client{conn: conn, timeout: timeoutOrDefault(timeout)}
}

func timeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout == 0 {
		return DefaultTimeout
	}
	return timeout
}

func (c *client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

func (c *client) invoke(ctx context.Context, method string, req, resp any) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := c.conn.Invoke(ctx, v1alpha1.FullMethod(method), req, resp, grpc.CallContentSubtype(v1alpha1.CodecName))
	return errors.FromGRPCError(err)
}

func (c *client) CreateCombat(ctx context.Context, req *v1alpha1.CreateCombatRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "CreateCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) DeleteCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.DeleteCombatResponse, error) {
	resp := &v1alpha1.DeleteCombatResponse{}
	if err := c.invoke(ctx, "DeleteCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GetCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "GetCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) ListCombats(ctx context.Context, req *v1alpha1.ListCombatsRequest) (*v1alpha1.ListCombatsResponse, error) {
	resp := &v1alpha1.ListCombatsResponse{}
	if err := c.invoke(ctx, "ListCombats", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) SetActiveCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SetActiveCombatResponse, error) {
	resp := &v1alpha1.SetActiveCombatResponse{}
	if err := c.invoke(ctx, "SetActiveCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GetActiveCombat(ctx context.Context, req *v1alpha1.EmptyRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "GetActiveCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) Sync(ctx context.Context, req *v1alpha1.EmptyRequest) (*v1alpha1.SyncResponse, error) {
	resp := &v1alpha1.SyncResponse{}
	if err := c.invoke(ctx, "Sync", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) StartCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "StartCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) PauseCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "PauseCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) ResumeCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "ResumeCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) EndCombat(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "EndCombat", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) NextTurn(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "NextTurn", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) PreviousTurn(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "PreviousTurn", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GoToTurn(ctx context.Context, req *v1alpha1.GoToTurnRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "GoToTurn", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) RollInitiative(ctx context.Context, req *v1alpha1.RollInitiativeRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "RollInitiative", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) RollInitiativeDice(ctx context.Context, req *v1alpha1.CombatantRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "RollInitiativeDice", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) SortByInitiative(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "SortByInitiative", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) AddHeroCombatant(ctx context.Context, req *v1alpha1.AddHeroRequest) (*v1alpha1.AddCombatantResponse, error) {
	resp := &v1alpha1.AddCombatantResponse{}
	if err := c.invoke(ctx, "AddHeroCombatant", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) AddCreatureCombatant(ctx context.Context, req *v1alpha1.AddCreatureRequest) (*v1alpha1.AddCombatantResponse, error) {
	resp := &v1alpha1.AddCombatantResponse{}
	if err := c.invoke(ctx, "AddCreatureCombatant", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) RemoveCombatant(ctx context.Context, req *v1alpha1.CombatantRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "RemoveCombatant", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) UpdateCombatant(ctx context.Context, req *v1alpha1.UpdateCombatantRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "UpdateCombatant", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) AddGroup(ctx context.Context, req *v1alpha1.AddGroupRequest) (*v1alpha1.AddGroupResponse, error) {
	resp := &v1alpha1.AddGroupResponse{}
	if err := c.invoke(ctx, "AddGroup", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) RemoveGroup(ctx context.Context, req *v1alpha1.RemoveGroupRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "RemoveGroup", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) ApplyDamage(ctx context.Context, req *v1alpha1.AmountRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "ApplyDamage", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) ApplyHealing(ctx context.Context, req *v1alpha1.AmountRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "ApplyHealing", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) SetTempHP(ctx context.Context, req *v1alpha1.AmountRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "SetTempHP", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) AddCondition(ctx context.Context, req *v1alpha1.ConditionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "AddCondition", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) RemoveCondition(ctx context.Context, req *v1alpha1.ConditionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "RemoveCondition", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) UpdateConditionDuration(ctx context.Context, req *v1alpha1.ConditionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "UpdateConditionDuration", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) TickConditions(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "TickConditions", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) UpdateHeroPoints(ctx context.Context, req *v1alpha1.PointsRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "UpdateHeroPoints", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) UpdateVictoryPoints(ctx context.Context, req *v1alpha1.PointsRequest) (*v1alpha1.SessionResponse, error) {
	resp := &v1alpha1.SessionResponse{}
	if err := c.invoke(ctx, "UpdateVictoryPoints", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) AddLogEntry(ctx context.Context, req *v1alpha1.AddLogEntryRequest) (*v1alpha1.AddLogEntryResponse, error) {
	resp := &v1alpha1.AddLogEntryResponse{}
	if err := c.invoke(ctx, "AddLogEntry", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GetSummary(ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SummaryResponse, error) {
	resp := &v1alpha1.SummaryResponse{}
	if err := c.invoke(ctx, "GetSummary", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
