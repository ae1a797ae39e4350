package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"varchess/internal/game"
	"varchess/internal/varchess"
)

func newTestServer(t *testing.T) (*game.Manager, http.Handler) {
	t.Helper()
	games := game.NewManager()
	return games, NewRouter(NewHandler(games, nil))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

func TestNewGame(t *testing.T) {
	_, h := newTestServer(t)
	rr := do(t, h, http.MethodPost, "/api/games", "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
	st := decode[StateResponse](t, rr)
	if st.GameID == "" || st.ToMove != "white" || st.Status != "ongoing" {
		t.Errorf("unexpected state %+v", st)
	}
	if len(st.LegalMoves) != 20 {
		t.Errorf("expected 20 legal moves, got %d", len(st.LegalMoves))
	}
	if st.Position != varchess.StandardBoard().Encode(varchess.White) {
		t.Errorf("position = %q", st.Position)
	}
}

func TestNewGameFromLayout(t *testing.T) {
	_, h := newTestServer(t)
	rr := do(t, h, http.MethodPost, "/api/games", `{"layout":"k2/3/2K b"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	st := decode[StateResponse](t, rr)
	if st.ToMove != "black" || st.Position != "k2/3/2K b" {
		t.Errorf("unexpected state %+v", st)
	}

	rr = do(t, h, http.MethodPost, "/api/games", `{"layout":"k2/3 x"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad layout: expected 400, got %d", rr.Code)
	}
	rr = do(t, h, http.MethodPost, "/api/games", `{"layout":`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad json: expected 400, got %d", rr.Code)
	}
}

func TestStateAndPlay(t *testing.T) {
	games, h := newTestServer(t)
	id := games.NewGame(nil, varchess.White).ID

	rr := do(t, h, http.MethodGet, "/api/games/"+id, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodPost, "/api/games/"+id+"/play", `{"move":"e2e4"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	st := decode[StateResponse](t, rr)
	if st.ToMove != "black" || len(st.Moves) != 1 || st.Moves[0] != "e2e4" {
		t.Errorf("unexpected state after e2e4: %+v", st)
	}

	rr = do(t, h, http.MethodPost, "/api/games/"+id+"/play", `{"move":"e2e4"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("illegal move: expected 400, got %d", rr.Code)
	}
	if msg := decode[ErrorResponse](t, rr).Error; !strings.Contains(msg, "illegal move") {
		t.Errorf("error message %q", msg)
	}

	rr = do(t, h, http.MethodPost, "/api/games/"+id+"/play", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing move: expected 400, got %d", rr.Code)
	}
}

func TestUnknownGame(t *testing.T) {
	_, h := newTestServer(t)
	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/games/nope", ""},
		{http.MethodPost, "/api/games/nope/play", `{"move":"e2e4"}`},
		{http.MethodPost, "/api/games/nope/ai_move", `{}`},
	} {
		if rr := do(t, h, tc.method, tc.path, tc.body); rr.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tc.method, tc.path, rr.Code)
		}
	}
}

func TestAiMove(t *testing.T) {
	games, h := newTestServer(t)
	id := games.NewGame(nil, varchess.White).ID

	rr := do(t, h, http.MethodPost, "/api/games/"+id+"/ai_move", `{"max_depth":2}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	res := decode[AiMoveResponse](t, rr)
	if res.Depth != 2 || res.Nodes == 0 {
		t.Errorf("unexpected search stats %+v", res)
	}
	if len(res.State.Moves) != 1 || res.State.Moves[0] != res.BestMove || res.State.ToMove != "black" {
		t.Errorf("move %q not applied: %+v", res.BestMove, res.State)
	}

	rr = do(t, h, http.MethodPost, "/api/games/"+id+"/ai_move", `{"random":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("random: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	res = decode[AiMoveResponse](t, rr)
	if len(res.State.Moves) != 2 || res.State.ToMove != "white" {
		t.Errorf("random move not applied: %+v", res.State)
	}
}

func TestAiMoveGameOver(t *testing.T) {
	games, h := newTestServer(t)
	b, side, err := varchess.Decode("k7/8/8/8/8/8/6P^P^/r6K w")
	if err != nil {
		t.Fatal(err)
	}
	id := games.NewGame(b, side).ID

	rr := do(t, h, http.MethodPost, "/api/games/"+id+"/ai_move", "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
	st := decode[StateResponse](t, do(t, h, http.MethodGet, "/api/games/"+id, ""))
	if st.Status != "checkmate" || len(st.LegalMoves) != 0 {
		t.Errorf("unexpected state %+v", st)
	}
}

func TestAiMoveClampsDepth(t *testing.T) {
	games, h := newTestServer(t)
	b, side, err := varchess.Decode("k7/8/8/8/8/8/8/7K w")
	if err != nil {
		t.Fatal(err)
	}
	id := games.NewGame(b, side).ID

	rr := do(t, h, http.MethodPost, "/api/games/"+id+"/ai_move", `{"max_depth":1000}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if res := decode[AiMoveResponse](t, rr); res.Depth != maxAiDepth {
		t.Errorf("depth = %d; want %d", res.Depth, maxAiDepth)
	}
}
