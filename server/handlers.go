package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/squatwatch/squatwatch/pkg/domain"
	"github.com/squatwatch/squatwatch/pkg/monitor"
)

// statusHandler returns server and monitoring status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Status  string         `json:"status"`
		Version string         `json:"version"`
		Time    time.Time      `json:"time"`
		Monitor monitor.Status `json:"monitor"`
	}{Status: "ok", Version: s.version, Time: time.Now().UTC(), Monitor: s.engine.Status()}
	renderJSON(w, r, http.StatusOK, resp)
}

// listDomainsHandler returns the watch-list
func (s *Server) listDomainsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{"domains": s.engine.Domains()})
}

// addDomainHandler adds a domain to the watch-list
func (s *Server) addDomainHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Domain) == "" {
		renderError(w, r, fmt.Errorf("domain is required"), http.StatusBadRequest)
		return
	}
	if err := s.engine.AddDomain(req.Domain); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusCreated, map[string]any{"domains": s.engine.Domains()})
}

// removeDomainHandler removes a domain from the watch-list
func (s *Server) removeDomainHandler(w http.ResponseWriter, r *http.Request) {
	dom := r.PathValue("domain")
	if err := s.engine.RemoveDomain(dom); err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"domains": s.engine.Domains()})
}

// listThreatsHandler returns threats filtered by optional level/source/status
func (s *Server) listThreatsHandler(w http.ResponseWriter, r *http.Request) {
	level := domain.ThreatLevel(r.URL.Query().Get("level"))
	source := domain.Source(r.URL.Query().Get("source"))
	status := domain.ThreatStatus(r.URL.Query().Get("status"))

	threats := s.engine.Threats(level, source, status)
	renderJSON(w, r, http.StatusOK, map[string]any{"threats": threats, "count": len(threats)})
}

// dismissThreatHandler marks a threat dismissed, idempotent
func (s *Server) dismissThreatHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.DismissThreat(r.PathValue("id"))
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "dismissed"})
}

// certFeedHandler returns the certstream recency buffer
func (s *Server) certFeedHandler(w http.ResponseWriter, r *http.Request) {
	recs := s.engine.CertFeed()
	renderJSON(w, r, http.StatusOK, map[string]any{"records": recs, "count": len(recs)})
}

// clearCertFeedHandler empties the certstream buffer
func (s *Server) clearCertFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearCertFeed()
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "cleared"})
}

// lookupFeedHandler returns the lookup recency buffer
func (s *Server) lookupFeedHandler(w http.ResponseWriter, r *http.Request) {
	recs := s.engine.LookupFeed()
	renderJSON(w, r, http.StatusOK, map[string]any{"records": recs, "count": len(recs)})
}

// clearLookupFeedHandler empties the lookup buffer
func (s *Server) clearLookupFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearLookupFeed()
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "cleared"})
}

// pauseCertStreamHandler stops scoring of certstream records
func (s *Server) pauseCertStreamHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.PauseCertStream(true)
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "paused"})
}

// resumeCertStreamHandler resumes scoring of certstream records
func (s *Server) resumeCertStreamHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.PauseCertStream(false)
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "resumed"})
}

// triggerLookupHandler starts a manual lookup pass
func (s *Server) triggerLookupHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.TriggerLookupNow(); err != nil {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	renderJSON(w, r, http.StatusAccepted, map[string]string{"result": "started"})
}

// usageHandler returns the daily lookup quota state
func (s *Server) usageHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.Usage())
}

// resetUsageHandler zeroes the daily lookup counter
func (s *Server) resetUsageHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.ResetUsage()
	renderJSON(w, r, http.StatusOK, s.engine.Usage())
}

// getSettingsHandler returns the current settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.Settings())
}

// updateSettingsHandler validates and applies new settings
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if err := s.engine.UpdateSettings(settings); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.engine.Settings())
}

// exportHandler returns the full state as a single download
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="squatwatch-export.json"`)
	renderJSON(w, r, http.StatusOK, s.engine.Export())
}

// testAlertHandler sends a test alert through the configured channel
func (s *Server) testAlertHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.TestAlert(r.Context()); err != nil {
		log.Printf("[WARN] test alert failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "sent"})
}

// clearDataHandler drops all monitor state
func (s *Server) clearDataHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.ClearAll(r.Context()); err != nil {
		log.Printf("[ERROR] failed to clear data: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "cleared"})
}
