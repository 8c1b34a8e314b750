package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/memory"
	"github.com/rocketscienceinc/cazconnect-backend/internal/service"
	"github.com/rocketscienceinc/cazconnect-backend/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/cazconnect-backend/mocks/usecase"
)

type testServer struct {
	*httptest.Server
	memoryRepo   *mockedUseCase.MockmemoryRepo
	settingsRepo *mockedUseCase.MocksettingsRepo
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memoryRepo := mockedUseCase.NewMockmemoryRepo(t)
	settingsRepo := mockedUseCase.NewMocksettingsRepo(t)
	random := service.NewRandomizer(1)
	store := memory.NewStore(nil)

	manager := usecase.NewGameManager(logger, memoryRepo, settingsRepo, store,
		service.NewBotService(random),
		service.NewTrainer(logger, store, random),
	)

	server := httptest.NewServer(NewRouter(logger, manager, nil))
	t.Cleanup(server.Close)

	return testServer{Server: server, memoryRepo: memoryRepo, settingsRepo: settingsRepo}
}

func (that testServer) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	request, err := http.NewRequest(method, that.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	response, err := that.Client().Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	return response, data
}

type gameView struct {
	ID         string        `json:"id"`
	Status     string        `json:"status"`
	StatusText string        `json:"status_text"`
	LegalMoves []entity.Move `json:"legal_moves"`
	History    []struct {
		Player string `json:"player"`
		Row    int    `json:"row"`
		Col    int    `json:"col"`
	} `json:"history"`
	State struct {
		Board     [8][8]string `json:"board"`
		Mover     string       `json:"mover"`
		MovesMade int          `json:"moves_made"`
	} `json:"state"`
	Scores map[string]int `json:"scores"`
}

func decodeGame(t *testing.T, data []byte) gameView {
	t.Helper()

	var view gameView
	require.NoError(t, json.Unmarshal(data, &view))

	return view
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	response, body := server.do(t, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestGameHandler_Games(t *testing.T) {
	server := newTestServer(t)

	// Given: a new game against the computer
	response, body := server.do(t, http.MethodPost, "/games", `{"mode":"pvc","difficulty":"medium"}`)
	require.Equal(t, http.StatusCreated, response.StatusCode)

	game := decodeGame(t, body)
	require.NotEmpty(t, game.ID)
	assert.Equal(t, "Player X's Turn", game.StatusText)
	assert.Len(t, game.LegalMoves, 28)
	assert.Equal(t, map[string]int{"X": 0, "O": 0}, game.Scores)

	t.Run("Human move gets an answer", func(t *testing.T) {
		response, body := server.do(t, http.MethodPost, "/games/"+game.ID+"/moves", `{"row":0,"col":0}`)

		require.Equal(t, http.StatusOK, response.StatusCode)
		view := decodeGame(t, body)
		assert.Len(t, view.History, 2)
		assert.Equal(t, "X", view.State.Board[0][0])
		assert.Equal(t, "X", view.State.Mover)
		assert.Equal(t, 2, view.State.MovesMade)
	})

	t.Run("Illegal move", func(t *testing.T) {
		response, _ := server.do(t, http.MethodPost, "/games/"+game.ID+"/moves", `{"row":4,"col":4}`)

		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
	})

	t.Run("Malformed move", func(t *testing.T) {
		response, _ := server.do(t, http.MethodPost, "/games/"+game.ID+"/moves", `{"row":`)

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("Legal moves", func(t *testing.T) {
		response, body := server.do(t, http.MethodGet, "/games/"+game.ID+"/moves", "")

		require.Equal(t, http.StatusOK, response.StatusCode)
		var moves []entity.Move
		require.NoError(t, json.Unmarshal(body, &moves))
		assert.NotEmpty(t, moves)
	})

	t.Run("Reset lets the computer open", func(t *testing.T) {
		response, body := server.do(t, http.MethodPost, "/games/"+game.ID+"/reset", "")

		require.Equal(t, http.StatusOK, response.StatusCode)
		view := decodeGame(t, body)
		require.Len(t, view.History, 1)
		assert.Equal(t, "O", view.History[0].Player)
	})

	t.Run("Settings change restarts with X", func(t *testing.T) {
		response, body := server.do(t, http.MethodPut, "/games/"+game.ID+"/settings", `{"mode":"pvp","difficulty":"easy"}`)

		require.Equal(t, http.StatusOK, response.StatusCode)
		view := decodeGame(t, body)
		assert.Empty(t, view.History)
		assert.Equal(t, "X", view.State.Mover)

		response, _ = server.do(t, http.MethodPut, "/games/"+game.ID+"/settings", `{"mode":"pvp","difficulty":"godlike"}`)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("Unknown game", func(t *testing.T) {
		response, body := server.do(t, http.MethodGet, "/games/missing", "")

		assert.Equal(t, http.StatusNotFound, response.StatusCode)
		assert.Contains(t, string(body), "game not found")
	})
}

func TestGameHandler_Memory(t *testing.T) {
	server := newTestServer(t)

	t.Run("Import", func(t *testing.T) {
		server.memoryRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

		response, body := server.do(t, http.MethodPut, "/memory", `{"wins":[{"moves":"O:0,0"}],"losses":[]}`)

		require.Equal(t, http.StatusOK, response.StatusCode)
		assert.JSONEq(t, `{"wins":1,"losses":0,"message":"AI Memory imported successfully!\nWins: 1\nLosses: 0"}`, string(body))
	})

	t.Run("Invalid import", func(t *testing.T) {
		response, body := server.do(t, http.MethodPut, "/memory", `{"wins":[]}`)

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Contains(t, string(body), "invalid memory file format")
	})

	t.Run("Export", func(t *testing.T) {
		response, body := server.do(t, http.MethodGet, "/memory", "")

		require.Equal(t, http.StatusOK, response.StatusCode)
		assert.Contains(t, response.Header.Get("Content-Disposition"), "caz-connect-ai-memory.json")
		assert.JSONEq(t, `{"wins":[{"moves":"O:0,0"}],"losses":[]}`, string(body))
	})
}

func TestGameHandler_Mute(t *testing.T) {
	server := newTestServer(t)
	server.settingsRepo.EXPECT().SetMuted(mock.Anything, true).Return(nil).Once()
	server.settingsRepo.EXPECT().Muted(mock.Anything).Return(true, nil).Once()

	response, _ := server.do(t, http.MethodPut, "/settings/mute", `{"muted":true}`)
	require.Equal(t, http.StatusOK, response.StatusCode)

	response, body := server.do(t, http.MethodGet, "/settings/mute", "")
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"muted":true}`, string(body))
}

func TestGameHandler_TrainingIdle(t *testing.T) {
	server := newTestServer(t)

	response, body := server.do(t, http.MethodGet, "/training", "")
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"running":false,"message":""}`, string(body))

	response, _ = server.do(t, http.MethodDelete, "/training", "")
	assert.Equal(t, http.StatusOK, response.StatusCode)
}
