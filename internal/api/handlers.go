package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trainquest/trainquest/internal/app/economy"
	"github.com/trainquest/trainquest/internal/app/progression"
	"github.com/trainquest/trainquest/internal/app/tracker"
	"github.com/trainquest/trainquest/internal/domain"
)

// ─── Catalogs ───────────────────────────────────────────────────────────────

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": economy.Activities()})
}

func (s *Server) handleAchievementCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"achievements": progression.AchievementCatalog()})
}

func (s *Server) handleListSkins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"skins": economy.Skins()})
}

// ─── Children ───────────────────────────────────────────────────────────────

func (s *Server) handleListChildren(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"children": s.tracker.Children()})
}

func (s *Server) handleAddChild(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	child, err := s.tracker.AddChild(req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, child)
}

func (s *Server) handleGetChild(w http.ResponseWriter, r *http.Request) {
	child, err := s.tracker.Child(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, child)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.tracker.Summary(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ─── Sessions ───────────────────────────────────────────────────────────────

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.tracker.Sessions(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

func (s *Server) handleLogSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActivityID      string   `json:"activity_id"`
		DurationMinutes int      `json:"duration_minutes"`
		EffortLevel     int      `json:"effort_level"`
		Note            string   `json:"note"`
		Tags            []string `json:"tags"`
		Planned         bool     `json:"planned"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.tracker.LogTrainingSession(tracker.LogInput{
		ChildID:         chi.URLParam(r, "childID"),
		ActivityID:      req.ActivityID,
		DurationMinutes: req.DurationMinutes,
		EffortLevel:     req.EffortLevel,
		Note:            req.Note,
		Tags:            req.Tags,
		Planned:         req.Planned,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DurationMinutes int `json:"duration_minutes"`
		EffortLevel     int `json:"effort_level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.tracker.CompletePlannedSession(chi.URLParam(r, "sessionID"), req.DurationMinutes, req.EffortLevel)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEditNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.tracker.EditSessionNote(chi.URLParam(r, "sessionID"), req.Note); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─── Map & Achievements ─────────────────────────────────────────────────────

func (s *Server) handleMapNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.tracker.MapNodes(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"nodes": nodes})
}

func (s *Server) handleCurrentNode(w http.ResponseWriter, r *http.Request) {
	node, err := s.tracker.CurrentMapNode(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"node": node})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := s.tracker.Achievements(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"achievements": unlocked})
}

// ─── Economy ────────────────────────────────────────────────────────────────

func (s *Server) handleWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := s.tracker.Wallets(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"wallets": wallets})
}

func (s *Server) handleGachaRoll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category domain.Category `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Category != domain.CategoryStudy && req.Category != domain.CategoryExercise {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}

	res, err := s.tracker.RollSkinGacha(chi.URLParam(r, "childID"), req.Category)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePurchaseSkin(w http.ResponseWriter, r *http.Request) {
	res, err := s.tracker.PurchaseSkin(chi.URLParam(r, "childID"), chi.URLParam(r, "skinID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleOwnedSkins(w http.ResponseWriter, r *http.Request) {
	skins, err := s.tracker.OwnedSkins(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"skins": skins})
}

// ─── Treasure ───────────────────────────────────────────────────────────────

func (s *Server) handleTreasure(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Treasure())
}

func (s *Server) handleOpenChest(w http.ResponseWriter, r *http.Request) {
	res, err := s.tracker.OpenTreasureChest(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ─── Buddy ──────────────────────────────────────────────────────────────────

func (s *Server) handleGetBuddy(w http.ResponseWriter, r *http.Request) {
	b, err := s.tracker.Buddy(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handlePetBuddy(w http.ResponseWriter, r *http.Request) {
	res, err := s.tracker.PetBuddy(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleFeedBuddy(w http.ResponseWriter, r *http.Request) {
	res, err := s.tracker.FeedBuddy(chi.URLParam(r, "childID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSetBuddySkin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SkinID string `json:"skin_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	b, err := s.tracker.SetBuddySkin(chi.URLParam(r, "childID"), req.SkinID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
