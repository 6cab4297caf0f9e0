package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/wayfarer/internal/service"
)

const (
	serverName    = "wayfarer"
	serverVersion = "0.1.0"
)

// Server exposes the travel service over the Model Context Protocol.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer builds the MCP server and registers every travel tool.
func NewServer(svc *service.Service) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, PartyCreateTool(), PartyCreateHandler(svc))
	mcp.AddTool(mcpServer, PartyGetTool(), PartyGetHandler(svc))
	mcp.AddTool(mcpServer, PartyListTool(), PartyListHandler(svc))
	mcp.AddTool(mcpServer, RosterAddTool(), RosterAddHandler(svc))
	mcp.AddTool(mcpServer, RosterRemoveTool(), RosterRemoveHandler(svc))
	mcp.AddTool(mcpServer, CharacterRegisterTool(), CharacterRegisterHandler(svc))
	mcp.AddTool(mcpServer, AdvanceDayTool(), AdvanceDayHandler(svc))
	mcp.AddTool(mcpServer, GenerateWeatherTool(), GenerateWeatherHandler(svc))
	mcp.AddTool(mcpServer, OverrideWeatherTool(), OverrideWeatherHandler(svc))
	mcp.AddTool(mcpServer, SetConditionsTool(), SetConditionsHandler(svc))
	mcp.AddTool(mcpServer, SetGearTool(), SetGearHandler(svc))
	mcp.AddTool(mcpServer, RollEventTool(), RollEventHandler(svc))
	mcp.AddTool(mcpServer, SetEventModifierTool(), SetEventModifierHandler(svc))
	mcp.AddTool(mcpServer, ToggleWatchTool(), ToggleWatchHandler(svc))
	mcp.AddTool(mcpServer, SetTaskActionTool(), SetTaskActionHandler(svc))
	mcp.AddTool(mcpServer, AdjustResourceTool(), AdjustResourceHandler(svc))
	mcp.AddTool(mcpServer, BuyConsumableTool(), BuyConsumableHandler(svc))
	mcp.AddTool(mcpServer, ResetConsumablesTool(), ResetConsumablesHandler(svc))
	mcp.AddTool(mcpServer, RollHexesTool(), RollHexesHandler(svc))
	mcp.AddTool(mcpServer, ResolveActionTool(), ResolveActionHandler(svc))
	mcp.AddTool(mcpServer, SetPhaseTool(), SetPhaseHandler(svc))
	mcp.AddTool(mcpServer, ToggleStatusTool(), ToggleStatusHandler(svc))
	mcp.AddTool(mcpServer, SetTravelOptionsTool(), SetTravelOptionsHandler(svc))
	mcp.AddTool(mcpServer, DangerFactorsSetTool(), DangerFactorsSetHandler(svc))
	mcp.AddTool(mcpServer, DayLogTool(), DayLogHandler(svc))

	return &Server{mcpServer: mcpServer}
}

// Run serves MCP over stdio until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
