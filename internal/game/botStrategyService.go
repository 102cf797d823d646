package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
)

// DefaultLuaStrategy chases the food on the x axis first, then y, and turns
// sideways instead of reversing.
const DefaultLuaStrategy = `
local opposite = {up = "down", down = "up", left = "right", right = "left"}

function getNextDirection(head, food, direction, width, height)
	local want = direction
	if food.x > head.x then
		want = "right"
	elseif food.x < head.x then
		want = "left"
	elseif food.y > head.y then
		want = "down"
	elseif food.y < head.y then
		want = "up"
	end

	if opposite[direction] == want then
		if want == "left" or want == "right" then
			if food.y >= head.y then want = "down" else want = "up" end
		else
			if food.x >= head.x then want = "right" else want = "left" end
		end
	end
	return want
end
`

var ErrLuaStrategy = errors.New("lua strategy")

// LuaStrategy asks a Lua function getNextDirection(head, food, direction,
// width, height) for the next heading name.
type LuaStrategy struct {
	StrategyName       string
	StrategyDefinition string
	// Fallback is consulted when the script fails.
	Fallback Strategy
}

func NewLuaStrategy(name, definition string) *LuaStrategy {
	return &LuaStrategy{
		StrategyName:       name,
		StrategyDefinition: definition,
		Fallback:           DefaultStrategy{},
	}
}

func (s *LuaStrategy) NextDirection(board Board) Direction {
	dir, err := s.evaluate(board)
	if err != nil {
		log.Warn("Autopilot script failed, using fallback.", "strategy", s.StrategyName, "error", err)
		if s.Fallback != nil {
			return s.Fallback.NextDirection(board)
		}
		return board.Snake().Direction()
	}
	return dir
}

func (s *LuaStrategy) evaluate(board Board) (Direction, error) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(s.StrategyDefinition); err != nil {
		return Up, fmt.Errorf("%w: parse %s: %v", ErrLuaStrategy, s.StrategyName, err)
	}

	fn := luaState.GetGlobal("getNextDirection")
	if fn.Type() != lua.LTFunction {
		return Up, fmt.Errorf("%w: %s does not define getNextDirection", ErrLuaStrategy, s.StrategyName)
	}

	// The script steers from where the head will be once this tick's move lands.
	snake := board.Snake()
	nextHead := snake.Advance(board.Width(), board.Height()).Head()
	err := luaState.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
		positionTable(luaState, nextHead),
		positionTable(luaState, board.Food().Position()),
		lua.LString(snake.Direction().String()),
		lua.LNumber(board.Width()),
		lua.LNumber(board.Height()),
	)
	if err != nil {
		return Up, fmt.Errorf("%w: call %s: %v", ErrLuaStrategy, s.StrategyName, err)
	}

	luaReturn := luaState.Get(-1)
	luaState.Pop(1)

	name, ok := luaReturn.(lua.LString)
	if !ok {
		return Up, fmt.Errorf("%w: %s returned %s, expected string", ErrLuaStrategy, s.StrategyName, luaReturn.Type())
	}
	dir, err := ParseDirection(string(name))
	if err != nil {
		return Up, fmt.Errorf("%w: %s: %w", ErrLuaStrategy, s.StrategyName, err)
	}
	return dir, nil
}

func positionTable(luaState *lua.LState, p Position) *lua.LTable {
	table := luaState.NewTable()
	luaState.SetField(table, "x", lua.LNumber(p.X))
	luaState.SetField(table, "y", lua.LNumber(p.Y))
	return table
}
