package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified CombatService name
const ServiceName = "combat.v1alpha1.CombatService"

// FullMethod returns the gRPC method path for a CombatService method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CombatServiceServer is the server API for CombatService
type CombatServiceServer interface {
	CreateCombat(ctx context.Context, req *CreateCombatRequest) (*SessionResponse, error)
	DeleteCombat(ctx context.Context, req *SessionRequest) (*DeleteCombatResponse, error)
	GetCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	ListCombats(ctx context.Context, req *ListCombatsRequest) (*ListCombatsResponse, error)
	SetActiveCombat(ctx context.Context, req *SessionRequest) (*SetActiveCombatResponse, error)
	GetActiveCombat(ctx context.Context, req *EmptyRequest) (*SessionResponse, error)
	Sync(ctx context.Context, req *EmptyRequest) (*SyncResponse, error)
	StartCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	PauseCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	ResumeCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	EndCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	NextTurn(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	PreviousTurn(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	GoToTurn(ctx context.Context, req *GoToTurnRequest) (*SessionResponse, error)
	RollInitiative(ctx context.Context, req *RollInitiativeRequest) (*SessionResponse, error)
	RollInitiativeDice(ctx context.Context, req *CombatantRequest) (*SessionResponse, error)
	SortByInitiative(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	AddHeroCombatant(ctx context.Context, req *AddHeroRequest) (*AddCombatantResponse, error)
	AddCreatureCombatant(ctx context.Context, req *AddCreatureRequest) (*AddCombatantResponse, error)
	RemoveCombatant(ctx context.Context, req *CombatantRequest) (*SessionResponse, error)
	UpdateCombatant(ctx context.Context, req *UpdateCombatantRequest) (*SessionResponse, error)
	AddGroup(ctx context.Context, req *AddGroupRequest) (*AddGroupResponse, error)
	RemoveGroup(ctx context.Context, req *RemoveGroupRequest) (*SessionResponse, error)
	ApplyDamage(ctx context.Context, req *AmountRequest) (*SessionResponse, error)
	ApplyHealing(ctx context.Context, req *AmountRequest) (*SessionResponse, error)
	SetTempHP(ctx context.Context, req *AmountRequest) (*SessionResponse, error)
	AddCondition(ctx context.Context, req *ConditionRequest) (*SessionResponse, error)
	RemoveCondition(ctx context.Context, req *ConditionRequest) (*SessionResponse, error)
	UpdateConditionDuration(ctx context.Context, req *ConditionRequest) (*SessionResponse, error)
	TickConditions(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	UpdateHeroPoints(ctx context.Context, req *PointsRequest) (*SessionResponse, error)
	UpdateVictoryPoints(ctx context.Context, req *PointsRequest) (*SessionResponse, error)
	AddLogEntry(ctx context.Context, req *AddLogEntryRequest) (*AddLogEntryResponse, error)
	GetSummary(ctx context.Context, req *SessionRequest) (*SummaryResponse, error)
}

// RegisterCombatServiceServer registers srv with s
func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	s.RegisterService(&CombatServiceDesc, srv)
}

// CombatServiceDesc describes CombatService. Messages are plain structs
// carried by the JSON codec.
var CombatServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateCombat", CombatServiceServer.CreateCombat),
		unary("DeleteCombat", CombatServiceServer.DeleteCombat),
		unary("GetCombat", CombatServiceServer.GetCombat),
		unary("ListCombats", CombatServiceServer.ListCombats),
		unary("SetActiveCombat", CombatServiceServer.SetActiveCombat),
		unary("GetActiveCombat", CombatServiceServer.GetActiveCombat),
		unary("Sync", CombatServiceServer.Sync),
		unary("StartCombat", CombatServiceServer.StartCombat),
		unary("PauseCombat", CombatServiceServer.PauseCombat),
		unary("ResumeCombat", CombatServiceServer.ResumeCombat),
		unary("EndCombat", CombatServiceServer.EndCombat),
		unary("NextTurn", CombatServiceServer.NextTurn),
		unary("PreviousTurn", CombatServiceServer.PreviousTurn),
		unary("GoToTurn", CombatServiceServer.GoToTurn),
		unary("RollInitiative", CombatServiceServer.RollInitiative),
		unary("RollInitiativeDice", CombatServiceServer.RollInitiativeDice),
		unary("SortByInitiative", CombatServiceServer.SortByInitiative),
		unary("AddHeroCombatant", CombatServiceServer.AddHeroCombatant),
		unary("AddCreatureCombatant", CombatServiceServer.AddCreatureCombatant),
		unary("RemoveCombatant", CombatServiceServer.RemoveCombatant),
		unary("UpdateCombatant", CombatServiceServer.UpdateCombatant),
		unary("AddGroup", CombatServiceServer.AddGroup),
		unary("RemoveGroup", CombatServiceServer.RemoveGroup),
		unary("ApplyDamage", CombatServiceServer.ApplyDamage),
		unary("ApplyHealing", CombatServiceServer.ApplyHealing),
		unary("SetTempHP", CombatServiceServer.SetTempHP),
		unary("AddCondition", CombatServiceServer.AddCondition),
		unary("RemoveCondition", CombatServiceServer.RemoveCondition),
		unary("UpdateConditionDuration", CombatServiceServer.UpdateConditionDuration),
		unary("TickConditions", CombatServiceServer.TickConditions),
		unary("UpdateHeroPoints", CombatServiceServer.UpdateHeroPoints),
		unary("UpdateVictoryPoints", CombatServiceServer.UpdateVictoryPoints),
		unary("AddLogEntry", CombatServiceServer.AddLogEntry),
		unary("GetSummary", CombatServiceServer.GetSummary),
	},
	Streams: []grpc.StreamDesc{},
}

func unary[Req, Resp any](method string, call func(CombatServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CombatServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CombatServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
