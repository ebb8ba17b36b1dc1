package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/util"
	"github.com/rlc-community-providers/rlc-hpalm-provider/pkg/alm"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

const (
	FieldProject       = "project"
	FieldStatusFilters = "statusFilters"
	FieldTitleFilter   = "titleFilter"
)

var supportedFields = []string{FieldProject, FieldStatusFilters}

// Provider adapts HP ALM defects and projects to the result shapes the
// release-management host expects. Every operation resolves the active
// connection profile and establishes a fresh ALM session; sessions are not
// pooled across calls.
type Provider struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewProviderService(st *store.Store) *Provider {
	return &Provider{
		store: st,
		log:   zap.S().Named("provider"),
	}
}

// FindParams are the inputs of a defect search. Project is required.
type FindParams struct {
	Project  string
	Statuses []string
	Title    string
}

// FindRequests searches the project for defects matching the status and
// title filters and maps each hit to a provider result.
func (p *Provider) FindRequests(ctx context.Context, params FindParams) ([]models.ProviderInfo, error) {
	if params.Project == "" {
		return nil, srvErrors.NewValidationError("missing required property: %s", FieldProject)
	}
	p.log.Debugw("finding defects",
		"project", params.Project,
		"statusFilters", params.Statuses,
		"titleFilter", params.Title,
	)

	client, session, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	query := alm.DefectQuery{
		Statuses: params.Statuses,
		Title:    params.Title,
		Limit:    p.resultLimit(ctx),
	}
	defects, err := client.GetDefects(ctx, session, params.Project, query)
	if err != nil {
		return nil, err
	}

	results := make([]models.ProviderInfo, 0, len(defects))
	for _, defect := range defects {
		info := p.buildInfo(client, defect)
		// raw defect ids are only unique per project
		info.ID = params.Project + models.CompositeIDSeparator + defect.ID
		info.URL = defectURL(client, params.Project, defect.ID)
		results = append(results, info)
	}
	return results, nil
}

// GetRequest looks up one defect by its composite `project:id` identifier.
func (p *Provider) GetRequest(ctx context.Context, compositeID string) (*models.ProviderInfo, error) {
	projectID, defectID, ok := strings.Cut(compositeID, models.CompositeIDSeparator)
	if !ok || projectID == "" || defectID == "" {
		return nil, srvErrors.NewValidationError("request id %q is not of the form project%sid",
			compositeID, models.CompositeIDSeparator)
	}
	p.log.Debugw("getting defect", "project", projectID, "defect", defectID)

	client, session, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	defect, err := client.GetDefect(ctx, session, projectID, defectID)
	if err != nil {
		return nil, err
	}

	info := p.buildInfo(client, *defect)
	if info.ID == "" {
		info.ID = defect.Name
	}
	info.URL = defectURL(client, defect.Project, defect.ID)
	return &info, nil
}

// FieldValues returns the selectable options for a provider input field:
// all ALM projects for `project`, the configured status list for
// `statusFilters`.
func (p *Provider) FieldValues(ctx context.Context, fieldName string) (*models.FieldInfo, error) {
	if !util.Contains(supportedFields, fieldName) {
		return nil, srvErrors.NewValidationError("unsupported get values for field name: %s", fieldName)
	}

	if fieldName == FieldProject {
		return p.projectFieldValues(ctx)
	}
	return p.statusFilterFieldValues(ctx)
}

// Status probes the provider: active connection resolution, the
// authentication handshake and the liveness endpoint.
func (p *Provider) Status(ctx context.Context) (*models.ProviderStatus, error) {
	conn, err := p.store.Connection().GetActive(ctx)
	if err != nil {
		return nil, err
	}

	status := &models.ProviderStatus{Connection: conn.Name}

	client, err := newClient(conn)
	if err != nil {
		status.Error = err
		return status, nil
	}
	session, err := client.Login(ctx)
	if err != nil {
		status.Error = err
		return status, nil
	}
	authenticated, err := client.IsAuthenticated(ctx, session)
	if err != nil {
		status.Error = err
		return status, nil
	}
	status.Authenticated = authenticated
	return status, nil
}

func (p *Provider) projectFieldValues(ctx context.Context) (*models.FieldInfo, error) {
	client, session, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := client.GetProjects(ctx, session)
	if err != nil {
		return nil, err
	}

	info := &models.FieldInfo{Name: FieldProject}
	for _, project := range projects {
		value := models.FieldValue{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Name,
		}
		if value.ID == "" {
			value.ID = project.Name
		}
		info.Values = append(info.Values, value)
	}
	return info, nil
}

func (p *Provider) statusFilterFieldValues(ctx context.Context) (*models.FieldInfo, error) {
	settings := p.settings(ctx)

	info := &models.FieldInfo{Name: FieldStatusFilters}
	for _, status := range util.SplitList(settings.StatusFilters) {
		info.Values = append(info.Values, models.FieldValue{ID: status, Name: status})
	}
	return info, nil
}

// connect resolves the active connection profile and performs the login
// handshake.
func (p *Provider) connect(ctx context.Context) (*alm.Client, *alm.Session, error) {
	conn, err := p.store.Connection().GetActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, err := newClient(conn)
	if err != nil {
		return nil, nil, err
	}

	session, err := client.Login(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client, session, nil
}

// settings returns the stored provider settings, falling back to the
// defaults when nothing has been saved yet.
func (p *Provider) settings(ctx context.Context) *models.Settings {
	settings, err := p.store.Settings().Get(ctx)
	if err != nil {
		if !srvErrors.IsResourceNotFoundError(err) {
			p.log.Warnw("failed to load provider settings, using defaults", "error", err)
		}
		return &models.Settings{
			StatusFilters: models.DefaultStatusFilters,
			ResultLimit:   strconv.Itoa(models.DefaultResultLimit),
		}
	}
	return settings
}

// resultLimit parses the configured limit; an unparseable value degrades to
// the default with a warning, never an error.
func (p *Provider) resultLimit(ctx context.Context) int {
	settings := p.settings(ctx)

	raw := strings.TrimSpace(settings.ResultLimit)
	if raw == "" {
		return models.DefaultResultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		p.log.Warnw("invalid result limit configured, falling back to default",
			"configured", settings.ResultLimit,
			"default", models.DefaultResultLimit,
		)
		return models.DefaultResultLimit
	}
	return limit
}

// buildInfo maps a defect to the host result shape. Only non-empty
// attributes make it into the property bag.
func (p *Provider) buildInfo(client *alm.Client, defect models.Defect) models.ProviderInfo {
	info := models.ProviderInfo{
		ID:          defect.ID,
		Name:        defect.Name,
		Title:       defect.Name,
		Type:        defect.Type,
		Description: defect.Description,
	}

	addProperty(&info, "project", "Project", defect.Project)
	addProperty(&info, "owner", "Owner", defect.Owner)
	addProperty(&info, "status", "Status", defect.Status)
	addProperty(&info, "severity", "Severity", defect.Severity)
	addProperty(&info, "priority", "Priority", defect.Priority)
	addProperty(&info, "creator", "Creator", defect.Creator)
	addProperty(&info, "dateCreated", "Date Created", defect.DateCreated)
	addProperty(&info, "lastUpdated", "Last Updated", defect.LastUpdated)

	return info
}

func addProperty(info *models.ProviderInfo, name, displayName, value string) {
	if value == "" {
		return
	}
	info.Properties = append(info.Properties, models.Property{
		Name:        name,
		DisplayName: displayName,
		Value:       value,
	})
}

// defectURL synthesizes the deep link into the HP ALM web UI, e.g.
// http://host:8080/qcbin/ui/?p=DEFAULT/Demo#/defects/1/details
func defectURL(client *alm.Client, projectID, defectID string) string {
	return fmt.Sprintf("%s/qcbin/ui/?p=%s/%s#/defects/%s/details",
		client.BaseURL(), client.Domain(), projectID, defectID)
}

func newClient(conn *models.Connection) (*alm.Client, error) {
	return alm.NewClient(conn.URL, conn.Username, conn.Password, conn.UseXSRF, conn.Domain)
}
