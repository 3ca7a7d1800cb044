package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/calclab/calc-mcp/pkg/calculator"
	"github.com/calclab/calc-mcp/pkg/logger"
	"github.com/calclab/calc-mcp/pkg/metrics"
	"github.com/calclab/calc-mcp/pkg/types"
)

// MCPCalcServer encapsulates the MCP server with calculator functionality
type MCPCalcServer struct {
	server  *server.MCPServer
	version string
}

// NewMCPCalcServer creates a new MCP server exposing the calculator tools
func NewMCPCalcServer(version string) *MCPCalcServer {
	s := &MCPCalcServer{
		server:  server.NewMCPServer("Calculator MCP", version),
		version: version,
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPCalcServer) Server() *server.MCPServer {
	return s.server
}

// registerTools registers all calculator tools
func (s *MCPCalcServer) registerTools() {
	// Add ping tool
	s.addPingTool()

	// Add arithmetic tools
	s.addPlusTool()
	s.addMinusTool()
	s.addTimesTool()
	s.addDivideTool()
	s.addEvaluateTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPCalcServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addPlusTool adds the plus tool
func (s *MCPCalcServer) addPlusTool() {
	plusTool := mcp.NewTool("plus",
		mcp.WithDescription("Add two numbers exactly"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("First operand, as an integer, fraction or decimal (\"2\", \"-3/4\", \"2.5\")"),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(plusTool, s.Plus)
}

// addMinusTool adds the minus tool
func (s *MCPCalcServer) addMinusTool() {
	minusTool := mcp.NewTool("minus",
		mcp.WithDescription("Subtract the second number from the first exactly"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(minusTool, s.Minus)
}

// addTimesTool adds the times tool
func (s *MCPCalcServer) addTimesTool() {
	timesTool := mcp.NewTool("times",
		mcp.WithDescription("Multiply two numbers exactly"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(timesTool, s.Times)
}

// addDivideTool adds the divide tool
func (s *MCPCalcServer) addDivideTool() {
	divideTool := mcp.NewTool("divide",
		mcp.WithDescription("Divide the first number by the second exactly; fails when the divisor is zero"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("Dividend"),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Divisor"),
		),
	)

	s.server.AddTool(divideTool, s.Divide)
}

// addEvaluateTool adds the evaluate tool
func (s *MCPCalcServer) addEvaluateTool() {
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Apply an operator to two numbers"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithString("op",
			mcp.Required(),
			mcp.Description("Operator, one of + - * /"),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(evaluateTool, s.Evaluate)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// newToolResultJSON serializes data into a text tool result
func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// newErrorResultJSON serializes data into a tool result flagged as an error
func newErrorResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	result, err := newToolResultJSON(data)
	if err == nil {
		result.IsError = true
	}
	return result, err
}

// Ping handles the ping command
func (s *MCPCalcServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - Calculator MCP is connected!"), nil
}

// Plus handles the plus command
func (s *MCPCalcServer) Plus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.operate(request, "plus", "+")
}

// Minus handles the minus command
func (s *MCPCalcServer) Minus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.operate(request, "minus", "-")
}

// Times handles the times command
func (s *MCPCalcServer) Times(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.operate(request, "times", "*")
}

// Divide handles the divide command
func (s *MCPCalcServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.operate(request, "divide", "/")
}

// Evaluate handles the evaluate command
func (s *MCPCalcServer) Evaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received evaluate request")

	op := request.Params.Arguments["op"].(string)

	var name string
	switch op {
	case "+":
		name = "plus"
	case "-":
		name = "minus"
	case "*":
		name = "times"
	case "/":
		name = "divide"
	default:
		return newErrorResult("unsupported operator %q, expected one of + - * /", op), nil
	}

	return s.operate(request, name, op)
}

// operate parses both operands, applies op and shapes the response.
func (s *MCPCalcServer) operate(request mcp.CallToolRequest, name, op string) (*mcp.CallToolResult, error) {
	logger.Debug("Received arithmetic request", "operation", name)

	aStr := request.Params.Arguments["a"].(string)
	bStr := request.Params.Arguments["b"].(string)

	a, err := calculator.ParseOperand(aStr)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("invalid_operand").Inc()
		return newErrorResult("invalid operand a: %v", err), nil
	}

	b, err := calculator.ParseOperand(bStr)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("invalid_operand").Inc()
		return newErrorResult("invalid operand b: %v", err), nil
	}

	result, err := calculator.Apply(op, a, b)
	if err != nil {
		if errors.Is(err, calculator.ErrDivisionByZero) {
			logger.Debug("Division by zero", "a", aStr)
			metrics.ErrorsTotal.WithLabelValues(types.ErrorKindDivisionByZero).Inc()
			return newErrorResultJSON(types.OperationResponse{
				Status:    "error",
				Operation: name,
				A:         aStr,
				B:         bStr,
				ErrorKind: types.ErrorKindDivisionByZero,
				Error:     err.Error(),
			})
		}
		logger.Error("Failed to apply operation", "error", err, "operation", name)
		return newErrorResult("failed to apply %s: %v", name, err), nil
	}

	metrics.OperationsTotal.WithLabelValues(name).Inc()

	response := types.OperationResponse{
		Status:    "success",
		Operation: name,
		A:         aStr,
		B:         bStr,
		Result:    calculator.FormatRat(result),
	}

	return newToolResultJSON(response)
}
