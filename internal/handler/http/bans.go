package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/router"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/utils"
	"github.com/MKhiriev/go-kita-inventory/models"
)

const bansPath = "/admin/bans"

type banRow struct {
	models.IPBan
	State string
}

type bansPage struct {
	Bans []banRow
}

func (h *Handler) bansIndex(w http.ResponseWriter, r *http.Request, _ router.Params) {
	bans, err := h.services.BruteForce.ListBans(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	now := time.Now()
	page := bansPage{Bans: make([]banRow, len(bans))}
	for i, ban := range bans {
		page.Bans[i] = banRow{IPBan: ban, State: ban.Status(now).String()}
	}

	h.render(w, r, viewBans, http.StatusOK, "Blocked addresses", page)
}

func (h *Handler) bansCreate(w http.ResponseWriter, r *http.Request, _ router.Params) {
	ctx := r.Context()

	form := models.ManualBanForm{
		IP:     strings.TrimSpace(r.PostFormValue("ip")),
		Reason: strings.TrimSpace(r.PostFormValue("reason")),
	}
	old := map[string]string{"ip": form.IP, "reason": form.Reason}

	if err := h.validator.Validate(ctx, form); err != nil {
		if !rejectForm(w, r, err, old, bansPath) {
			h.renderError(w, r, err)
		}
		return
	}

	if g := auth.FromContext(ctx); g != nil && g.IP() == form.IP {
		clearOldInput(r)
		flash(r, "error", "You cannot ban the address you are connected from.")
		router.RedirectTo(w, r, bansPath)
		return
	}

	if form.Reason == "" {
		form.Reason = "manual"
	}
	if _, err := h.services.BruteForce.BanPermanently(ctx, form.IP, form.Reason); err != nil {
		h.renderError(w, r, err)
		return
	}
	h.record(r, models.ChangelogEntry{UserID: h.currentUserID(r), Action: models.ActionBanCreated, Detail: "ip=" + form.IP})

	clearOldInput(r)
	flash(r, "success", form.IP+" is banned.")
	router.RedirectTo(w, r, bansPath)
}

func (h *Handler) bansDelete(w http.ResponseWriter, r *http.Request, params router.Params) {
	ctx := r.Context()
	ip := params.ByName("ip")

	if err := h.validator.Validate(ctx, models.ManualBanForm{IP: ip}, "IP"); err != nil {
		flash(r, "error", "Invalid IP address.")
		router.RedirectTo(w, r, bansPath)
		return
	}

	err := h.services.BruteForce.Unban(ctx, ip)
	switch {
	case errors.Is(err, store.ErrBanNotFound):
		flash(r, "error", "There is no record for "+ip+".")
	case err != nil:
		h.renderError(w, r, err)
		return
	default:
		h.record(r, models.ChangelogEntry{UserID: h.currentUserID(r), Action: models.ActionBanLifted, Detail: "ip=" + ip})
		flash(r, "success", "The ban on "+ip+" was lifted.")
	}

	router.RedirectTo(w, r, bansPath)
}

func (h *Handler) currentUserID(r *http.Request) int64 {
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return id
	}
	if g := auth.FromContext(r.Context()); g != nil {
		return g.ID(r.Context())
	}
	return 0
}

// record writes an audit entry; failures are logged only.
func (h *Handler) record(r *http.Request, entry models.ChangelogEntry) {
	entry.CreatedAt = time.Now()
	if err := h.changelog.Record(r.Context(), entry); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.record").Str("action", entry.Action).Msg("failed to write changelog")
	}
}
