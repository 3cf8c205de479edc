package config

import "github.com/samber/lo"

// CreateFlags holds the raw flag values of the create subcommand.
type CreateFlags struct {
	AccessToken string
	OrgID       string
	Key         string
	Value       string
	Note        string
	ProjectIDs  string
}

// Create is the resolved configuration of the create subcommand. Key, Value,
// Note and ProjectIDs come from CLI flags only.
type Create struct {
	AccessToken string
	OrgID       string
	Key         string
	Value       string
	Note        string
	ProjectIDs  []string
	Source      Source
}

// ResolveCreate merges create flags with the environment field by field.
func (r *Resolver) ResolveCreate(flags CreateFlags) Create {
	source := SourceEnv
	if flags.AccessToken != "" || flags.OrgID != "" || flags.Key != "" {
		source = SourceCLI
	}
	return Create{
		AccessToken: lo.CoalesceOrEmpty(flags.AccessToken, r.getenv(EnvAccessToken)),
		OrgID:       lo.CoalesceOrEmpty(flags.OrgID, r.envOrgID()),
		Key:         flags.Key,
		Value:       flags.Value,
		Note:        flags.Note,
		ProjectIDs:  SplitIDList(flags.ProjectIDs),
		Source:      source,
	}
}

// UpdateFlags holds the raw flag values of the update subcommand.
type UpdateFlags struct {
	AccessToken string
	SecretID    string
	SecretName  string
	OrgID       string
	Key         string
	Value       string
	Note        string
	ProjectIDs  string
}

// Update is the resolved configuration of the update subcommand. Empty
// update fields mean "keep the stored value".
type Update struct {
	AccessToken string
	SecretID    string
	SecretName  string
	OrgID       string
	Key         string
	Value       string
	Note        string
	ProjectIDs  []string
	Source      Source
}

// ResolveUpdate merges update flags with the environment field by field.
func (r *Resolver) ResolveUpdate(flags UpdateFlags) Update {
	source := SourceEnv
	if flags.AccessToken != "" || flags.OrgID != "" || flags.SecretID != "" ||
		flags.SecretName != "" || flags.Key != "" || flags.Value != "" ||
		flags.Note != "" || flags.ProjectIDs != "" {
		source = SourceCLI
	}
	return Update{
		AccessToken: lo.CoalesceOrEmpty(flags.AccessToken, r.getenv(EnvAccessToken)),
		SecretID:    flags.SecretID,
		SecretName:  flags.SecretName,
		OrgID:       lo.CoalesceOrEmpty(flags.OrgID, r.envOrgID()),
		Key:         flags.Key,
		Value:       flags.Value,
		Note:        flags.Note,
		ProjectIDs:  SplitIDList(flags.ProjectIDs),
		Source:      source,
	}
}

// DeleteFlags holds the raw flag values of the delete subcommand. SecretIDs
// entries may themselves be comma-separated.
type DeleteFlags struct {
	AccessToken string
	SecretIDs   []string
	SecretName  string
	OrgID       string
}

// Delete is the resolved configuration of the delete subcommand.
type Delete struct {
	AccessToken string
	SecretIDs   []string
	SecretName  string
	OrgID       string
	Source      Source
}

// ResolveDelete merges delete flags with the environment field by field and
// flattens comma-separated id arguments.
func (r *Resolver) ResolveDelete(flags DeleteFlags) Delete {
	var ids []string
	for _, raw := range flags.SecretIDs {
		ids = append(ids, SplitIDList(raw)...)
	}
	source := SourceEnv
	if flags.AccessToken != "" || flags.OrgID != "" || len(ids) > 0 || flags.SecretName != "" {
		source = SourceCLI
	}
	return Delete{
		AccessToken: lo.CoalesceOrEmpty(flags.AccessToken, r.getenv(EnvAccessToken)),
		SecretIDs:   ids,
		SecretName:  flags.SecretName,
		OrgID:       lo.CoalesceOrEmpty(flags.OrgID, r.envOrgID()),
		Source:      source,
	}
}

// ListFlags holds the raw flag values of the list subcommand.
type ListFlags struct {
	AccessToken string
	OrgID       string
	ProjectID   string
	KeyPattern  string
}

// List is the resolved configuration of the list subcommand.
type List struct {
	AccessToken string
	OrgID       string
	ProjectID   string
	KeyPattern  string
	Source      Source
}

// ResolveList merges list flags with the environment field by field.
func (r *Resolver) ResolveList(flags ListFlags) List {
	source := SourceEnv
	if flags.AccessToken != "" || flags.OrgID != "" || flags.ProjectID != "" || flags.KeyPattern != "" {
		source = SourceCLI
	}
	return List{
		AccessToken: lo.CoalesceOrEmpty(flags.AccessToken, r.getenv(EnvAccessToken)),
		OrgID:       lo.CoalesceOrEmpty(flags.OrgID, r.envOrgID()),
		ProjectID:   flags.ProjectID,
		KeyPattern:  flags.KeyPattern,
		Source:      source,
	}
}
