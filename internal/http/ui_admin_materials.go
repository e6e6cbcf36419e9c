package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/careerhub/portal/internal/domain/material"
	"github.com/careerhub/portal/internal/http/ui/viewmodel"
	"github.com/careerhub/portal/internal/service"
)

const (
	msgSaveMaterial          = "Failed to save study material."
	msgDeleteMaterial        = "Failed to delete study material."
	msgConfirmDeleteMaterial = "Are you sure you want to delete this study material?"
	adminMaterialsTable      = "admin-materials-table"
	adminMaterialsPath       = "/admin/materials"
	formTokenField           = "form_token"
)

var errUploadUnreadable = errors.New("could not read the uploaded file")

// Form operations that edit a list of the draft and re-render without submitting.
const (
	opAddFAQ        = "add-faq"
	opRemoveFAQ     = "remove-faq"
	opAddSubject    = "add-subject"
	opRemoveSubject = "remove-subject"
	opAddDate       = "add-date"
	opRemoveDate    = "remove-date"
	opRefresh       = "refresh"
)

func adminMaterialsMeta() PageMeta {
	return PageMeta{Title: "Manage Study Materials", CurrentPage: "admin-materials"}
}

// AdminMaterialsList renders the study-material table.
func (h *UIHandlers) AdminMaterialsList(w http.ResponseWriter, r *http.Request) {
	b := h.newPage(r, adminMaterialsMeta())
	items, err := h.Materials.AdminList(r.Context(), session(r))
	if err != nil {
		if HXTarget(r) == adminMaterialsTable {
			h.failAction(w, r, err, msgFetchMaterials, adminMaterialsPath)
			return
		}
		h.failPage(w, r, err, msgFetchMaterials, b.With("Materials", []material.StudyMaterial{}))
		return
	}
	b.With("Materials", items)
	if HXTarget(r) == adminMaterialsTable {
		h.renderFragment(w, r, adminMaterialsTable, b.Build())
		return
	}
	h.renderPage(w, r, b.Build())
}

type materialForm struct {
	Mode   FormMode
	ID     string
	Token  string
	Draft  material.Draft
	Errors map[string]string
	Notice *viewmodel.Notice
}

// AdminMaterialNew renders the form with a fresh draft.
func (h *UIHandlers) AdminMaterialNew(w http.ResponseWriter, r *http.Request) {
	h.renderMaterialForm(w, r, materialForm{Mode: FormModeCreate, Token: uuid.NewString(), Draft: material.NewDraft()})
}

// AdminMaterialEdit renders the form seeded from the stored material.
func (h *UIHandlers) AdminMaterialEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	m, err := h.Materials.Get(r.Context(), session(r), id)
	if err != nil {
		h.failPage(w, r, err, msgFetchMaterial, h.newPage(r, adminMaterialsMeta()).With("Materials", []material.StudyMaterial{}))
		return
	}
	h.renderMaterialForm(w, r, materialForm{
		Mode:  FormModeEdit,
		ID:    id,
		Token: uuid.NewString(),
		Draft: material.DraftFromMaterial(m),
	})
}

// AdminMaterialCreate handles posts of the create form.
func (h *UIHandlers) AdminMaterialCreate(w http.ResponseWriter, r *http.Request) {
	h.submitMaterial(w, r, "")
}

// AdminMaterialUpdate handles posts of the edit form.
func (h *UIHandlers) AdminMaterialUpdate(w http.ResponseWriter, r *http.Request) {
	h.submitMaterial(w, r, r.PathValue("id"))
}

func (h *UIHandlers) submitMaterial(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseMultipartForm(h.maxUploadBytes()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := materialForm{Mode: FormModeCreate, ID: id, Token: r.PostFormValue(formTokenField), Draft: parseDraft(r)}
	if id != "" {
		form.Mode = FormModeEdit
	}
	if form.Token == "" {
		form.Token = uuid.NewString()
	}

	if op := r.PostFormValue("op"); op != "" {
		applyDraftOp(&form.Draft, op, formIndex(r))
		h.renderMaterialForm(w, r, form)
		return
	}

	upload, err := h.readUpload(r)
	if err != nil {
		form.Errors = map[string]string{"file": err.Error()}
		form.Notice = &viewmodel.Notice{Category: "validation", Message: err.Error()}
		h.renderMaterialForm(w, r, form)
		return
	}

	_, err = h.Materials.Submit(r.Context(), session(r), service.Submission{
		Token: form.Token,
		ID:    id,
		Draft: form.Draft,
		File:  upload,
	})
	if err != nil {
		if h.handled(w, r, err) {
			return
		}
		h.logger().InfoContext(r.Context(), "material form rejected", "material_id", id, "error", err)
		form.Errors = fieldErrors(err)
		form.Notice = noticeFor(err, msgSaveMaterial)
		h.renderMaterialForm(w, r, form)
		return
	}

	msg := "Study material added successfully"
	if id != "" {
		msg = "Study material updated successfully"
	}
	HTMX(w).Trigger(eventMaterialsSet, nil)
	h.finishForm(w, r, msg, adminMaterialsPath)
}

// applyDraftOp runs one list operation of the form. Unknown operations only re-render.
func applyDraftOp(d *material.Draft, op string, index int) {
	switch op {
	case opAddFAQ:
		d.AddFAQ()
	case opRemoveFAQ:
		d.RemoveFAQ(index)
	case opAddSubject:
		d.AddSubject()
	case opRemoveSubject:
		d.RemoveSubject(index)
	case opAddDate:
		d.AddDate()
	case opRemoveDate:
		d.RemoveDate(index)
	case opRefresh:
		// The posted category may belong to the previous type.
		d.SetType(d.Type)
	}
}

func (h *UIHandlers) maxUploadBytes() int64 {
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return 10 << 20
}

// readUpload returns the chosen file, or nil when none was chosen.
func (h *UIHandlers) readUpload(r *http.Request) (*material.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	f, hdr, err := r.FormFile(material.PartFile)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errUploadUnreadable
	}
	defer f.Close()

	limit := h.maxUploadBytes()
	if hdr.Size > limit {
		return nil, fmt.Errorf("file is larger than %s", humanize.IBytes(uint64(limit)))
	}
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errUploadUnreadable
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file is larger than %s", humanize.IBytes(uint64(limit)))
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &material.Upload{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *UIHandlers) renderMaterialForm(w http.ResponseWriter, r *http.Request, f materialForm) {
	meta := PageMeta{Title: "Add Study Material", CurrentPage: "admin-material-form"}
	action := adminMaterialsPath
	if f.Mode == FormModeEdit {
		meta.Title = "Edit Study Material"
		action = adminMaterialsPath + "/" + url.PathEscape(f.ID)
	}
	types := make([]viewmodel.Option, 0, 2)
	for _, t := range material.Types() {
		types = append(types, viewmodel.Option{Value: string(t), Label: t.Label(), Selected: t == f.Draft.Type})
	}
	categories := []viewmodel.Option{{Value: "", Label: "Select a category", Selected: f.Draft.Category == ""}}
	for _, c := range f.Draft.CategoryOptions() {
		categories = append(categories, viewmodel.Option{Value: string(c), Label: c.Label(), Selected: c == f.Draft.Category})
	}
	data := h.newPage(r, meta).
		With("Mode", string(f.Mode)).
		With("Action", action).
		With("Token", f.Token).
		With("Draft", f.Draft).
		With("Types", types).
		With("Categories", categories).
		WithFieldErrors(f.Errors).
		WithNotice(f.Notice).
		Build()
	if IsHTMX(r) && HXTarget(r) == "material-form" {
		h.renderFragment(w, r, "material-form", data)
		return
	}
	h.renderPage(w, r, data)
}

// AdminMaterialConfirmDelete renders the delete confirmation for a material.
func (h *UIHandlers) AdminMaterialConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.renderConfirm(w, r, confirmDialog{
		Title:     "Delete study material",
		Message:   msgConfirmDeleteMaterial,
		DeleteURL: adminMaterialsPath + "/" + url.PathEscape(id),
		CancelURL: adminMaterialsPath,
		Target:    "#" + adminMaterialsTable,
	})
}

// AdminMaterialDelete deletes the material and answers with the re-fetched table.
func (h *UIHandlers) AdminMaterialDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Materials.Delete(r.Context(), session(r), id); err != nil {
		h.failAction(w, r, err, msgDeleteMaterial, adminMaterialsPath)
		return
	}
	if !IsHTMX(r) {
		http.Redirect(w, r, adminMaterialsPath, http.StatusSeeOther)
		return
	}
	HTMX(w).Toast("Study material deleted successfully", "success")
	items, err := h.Materials.AdminList(r.Context(), session(r))
	if err != nil {
		HTMX(w).Redirect(adminMaterialsPath)
		return
	}
	data := h.newPage(r, adminMaterialsMeta()).
		With("Materials", items).
		With("CloseModal", true).
		Build()
	HTMX(w).Retarget("#" + adminMaterialsTable)
	h.renderFragment(w, r, adminMaterialsTable, data)
}
