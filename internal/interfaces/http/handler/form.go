package handler

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/labelprint/backend/internal/application/labels"
	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/labelprint/backend/internal/domain/printing"
	infra "github.com/labelprint/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
)

//go:embed templates/form.html
var formTemplates embed.FS

const formTemplateName = "form.html"

// Messages shown by the form view
const (
	formSubmitLabel   = "ثبت"
	formSavedMessage  = "اطلاعات مشتری ثبت شد"
	formFailedMessage = "ثبت اطلاعات با خطا مواجه شد، دوباره تلاش کنید"
)

// RecordSubmitter appends a customer entered through the form
type RecordSubmitter interface {
	Submit(ctx context.Context, input labels.SubmitRecordInput) error
}

// FormHandler serves the record entry form
type FormHandler struct {
	BaseHandler
	submitter RecordSubmitter
	template  *template.Template
	style     printing.Style
	logger    *zap.Logger
}

type formInput struct {
	Name  string
	Label string
}

type formView struct {
	Title         string
	Lang          string
	Dir           printing.Direction
	FontURL       string
	FontStack     template.CSS
	Inputs        []formInput
	SubmitLabel   string
	Saved         bool
	SavedMessage  string
	Failed        bool
	FailedMessage string
}

// formInputs lists the posted field names with their on-screen labels
var formInputs = []formInput{
	{Name: "full_name", Label: customer.LabelFullName},
	{Name: "phone", Label: customer.LabelPhone},
	{Name: "address", Label: customer.LabelAddress},
	{Name: "postal_code", Label: customer.LabelPostalCode},
}

// NewFormHandler parses the embedded form template. The style's Caption,
// the shop title, is shown as the page heading.
func NewFormHandler(submitter RecordSubmitter, style printing.Style, logger *zap.Logger) (*FormHandler, error) {
	tmpl, err := template.ParseFS(formTemplates, "templates/"+formTemplateName)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormHandler{
		submitter: submitter,
		template:  tmpl,
		style:     style.WithDefaults(),
		logger:    logger,
	}, nil
}

// Show renders the empty form
func (h *FormHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, h.view())
}

// Submit appends the posted record and renders the form again with a banner.
// Missing fields are stored as empty strings. A body that cannot be parsed
// gets the error banner with status 400.
func (h *FormHandler) Submit(c *gin.Context) {
	log := requestLogger(c, h.logger)
	view := h.view()

	var input labels.SubmitRecordInput
	if err := c.ShouldBind(&input); err != nil {
		log.Warn("invalid form submission", zap.Error(err))
		view.Failed = true
		h.render(c, http.StatusBadRequest, view)
		return
	}

	if err := h.submitter.Submit(c.Request.Context(), input); err != nil {
		log.Error("failed to append customer record", zap.Error(err))
		view.Failed = true
		h.render(c, http.StatusInternalServerError, view)
		return
	}

	view.Saved = true
	h.render(c, http.StatusOK, view)
}

func (h *FormHandler) view() formView {
	return formView{
		Title:         h.style.Caption,
		Lang:          h.style.Language,
		Dir:           h.direction(),
		FontURL:       h.style.FontURL,
		FontStack:     template.CSS("'" + strings.ReplaceAll(h.style.FontFamily, "'", "") + "', serif"),
		Inputs:        formInputs,
		SubmitLabel:   formSubmitLabel,
		SavedMessage:  formSavedMessage,
		FailedMessage: formFailedMessage,
	}
}

func (h *FormHandler) direction() printing.Direction {
	if h.style.Direction != "" {
		return h.style.Direction
	}
	return infra.DirectionFor(h.style.Language)
}

func (h *FormHandler) render(c *gin.Context, status int, view formView) {
	c.Render(status, render.HTML{
		Template: h.template,
		Name:     formTemplateName,
		Data:     view,
	})
}
