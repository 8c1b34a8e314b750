package search

import (
	"math"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/wallconnect"
)

const (
	WinScore   = 100000
	DepthBonus = 100

	defaultDepth = 2
)

// Result of a search. Found is false when the position was already terminal, in particular when
// there were no legal moves to choose from.
type Result struct {
	Score int
	Move  entity.Move
	Found bool
	Nodes int
}

type Option func(cfg *config)

type config struct {
	depth     int
	evaluate  Evaluator
	maximizer entity.Cell
	moves     []entity.Move
	prune     bool
}

func WithDepth(depth int) Option {
	return func(cfg *config) {
		if depth >= 0 {
			cfg.depth = depth
		}
	}
}

func WithEvaluator(evaluate Evaluator) Option {
	return func(cfg *config) {
		if evaluate != nil {
			cfg.evaluate = evaluate
		}
	}
}

// WithMaximizer sets the side whose wins score positive. Defaults to the computer.
func WithMaximizer(player entity.Cell) Option {
	return func(cfg *config) {
		if player.IsPlayer() {
			cfg.maximizer = player
		}
	}
}

// WithMoves restricts the moves tried at the root. Deeper plies always use every legal move.
func WithMoves(moves []entity.Move) Option {
	return func(cfg *config) {
		if moves != nil {
			cfg.moves = moves
		}
	}
}

// withoutPruning exists to check alpha-beta against plain minimax.
func withoutPruning() Option {
	return func(cfg *config) {
		cfg.prune = false
	}
}

// Minimax - searches board with alpha-beta pruning. maximizing says whether the side to move is
// the maximizer. The board is copied; the caller's board is never touched.
func Minimax(board entity.Board, movesMade int, maximizing bool, options ...Option) Result {
	cfg := config{
		depth:     defaultDepth,
		evaluate:  Tactical,
		maximizer: entity.ComputerPlayer,
		prune:     true,
	}
	for _, option := range options {
		option(&cfg)
	}

	s := &searcher{
		config:    cfg,
		board:     board,
		minimizer: cfg.maximizer.Opponent(),
	}

	result := s.minimax(movesMade, cfg.depth, math.MinInt, math.MaxInt, maximizing, cfg.moves)
	result.Nodes = s.nodes

	return result
}

type searcher struct {
	config
	board     entity.Board
	minimizer entity.Cell
	nodes     int
}

func (s *searcher) minimax(movesMade, depth, alpha, beta int, maximizing bool, moves []entity.Move) Result {
	s.nodes++

	if moves == nil {
		moves = wallconnect.LegalMoves(&s.board, movesMade)
	}

	maximizerWon := wallconnect.HasWin(&s.board, s.maximizer)
	minimizerWon := !maximizerWon && wallconnect.HasWin(&s.board, s.minimizer)

	switch {
	case maximizerWon:
		return Result{Score: WinScore + depth*DepthBonus}
	case minimizerWon:
		return Result{Score: -WinScore - depth*DepthBonus}
	case depth == 0 || len(moves) == 0:
		return Result{Score: s.evaluate(&s.board, s.maximizer)}
	}

	best := Result{Move: moves[0], Found: true, Score: math.MaxInt}
	player := s.minimizer
	if maximizing {
		best.Score = math.MinInt
		player = s.maximizer
	}

	for _, move := range moves {
		s.board[move.Row][move.Col] = player
		score := s.minimax(movesMade+1, depth-1, alpha, beta, !maximizing, nil).Score
		s.board[move.Row][move.Col] = entity.EmptyCell

		if maximizing {
			if score > best.Score {
				best.Score = score
				best.Move = move
			}
			alpha = max(alpha, score)
		} else {
			if score < best.Score {
				best.Score = score
				best.Move = move
			}
			beta = min(beta, score)
		}

		if s.prune && beta <= alpha {
			break
		}
	}

	return best
}
