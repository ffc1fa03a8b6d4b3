package communication

// Request and response bodies shared by the HTTP server and its client.
// Boards travel as FEN, actions as "e2e4@e3".

type AnalyzeRequest struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth"`
}

type AnalyzeResponse struct {
	Move     string `json:"move,omitempty"` // Empty when the side to move has no action
	Score    int    `json:"score"`
	Mate     *int   `json:"mate,omitempty"` // Plies until a king falls
	Depth    int    `json:"depth"`
	Nodes    int    `json:"nodes"`
	Duration string `json:"duration"`
}

type NewGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

type ActionRequest struct {
	Move string `json:"move"`
}

type EngineRequest struct {
	Depth int `json:"depth,omitempty"`
}

type GameView struct {
	ID      string   `json:"id"`
	FEN     string   `json:"fen"`
	Active  string   `json:"active"`
	Winner  string   `json:"winner,omitempty"`
	History []string `json:"history"`
}

// Update is pushed to websocket subscribers after every change to a game.
type Update struct {
	Kind   string `json:"kind"` // "move" or "undo"
	Move   string `json:"move"`
	FEN    string `json:"fen"`
	Winner string `json:"winner,omitempty"`
}

type PerftResponse struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth"`
	Nodes int    `json:"nodes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
