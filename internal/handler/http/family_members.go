package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listFamilyMembers(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	members, err := h.services.FamilyMemberService.ListFamilyMembers(r.Context(), user, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if members == nil {
		members = []models.FamilyMember{}
	}

	writeSuccess(w, r, http.StatusOK, members, "")
}

func (h *Handler) createFamilyMember(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.CreateFamilyMemberRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	member, err := h.services.FamilyMemberService.CreateFamilyMember(r.Context(), user, chi.URLParam(r, "projectID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, member, "Family member added")
}

func (h *Handler) updateFamilyMember(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.UpdateFamilyMemberRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	member, err := h.services.FamilyMemberService.UpdateFamilyMember(r.Context(), user,
		chi.URLParam(r, "projectID"), chi.URLParam(r, "memberID"), req.ToUpdate())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, member, "Family member updated")
}

func (h *Handler) deleteFamilyMember(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	err := h.services.FamilyMemberService.DeleteFamilyMember(r.Context(), user, chi.URLParam(r, "projectID"), chi.URLParam(r, "memberID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, nil, "Family member deleted")
}
