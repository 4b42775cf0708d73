package project

import "github.com/jsamuelsen11/go-board-service/internal/domain/project"

// ToDomainProject converts a stored project document to a domain Project.
func ToDomainProject(dto *ProjectDTO) project.Project {
	p := project.Project{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
	}
	if len(dto.Columns) > 0 {
		p.Columns = make([]project.Column, len(dto.Columns))
		for i, c := range dto.Columns {
			p.Columns[i] = project.Column{ID: c.ID, Title: c.Title, Order: c.Order}
		}
	}
	return p
}

// ToDomainProjectList converts the GET /project response. Null entries,
// which the store returns for documents deleted mid-listing, are skipped.
func ToDomainProjectList(dtos []*ProjectDTO) []project.Project {
	projects := make([]project.Project, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		projects = append(projects, ToDomainProject(dto))
	}
	return projects
}

// ToCreateProjectRequest converts a domain Project to a POST body.
func ToCreateProjectRequest(p *project.Project) CreateProjectRequestDTO {
	return CreateProjectRequestDTO{
		Title:       p.Title,
		Description: p.Description,
		Columns:     toColumnDTOs(p.Columns),
	}
}

// ToUpdateProjectRequest converts a domain Project to a PATCH body. All
// fields are set (full replacement semantics).
func ToUpdateProjectRequest(p *project.Project) UpdateProjectRequestDTO {
	return UpdateProjectRequestDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Columns:     toColumnDTOs(p.Columns),
	}
}

func toColumnDTOs(cols []project.Column) []ColumnDTO {
	out := make([]ColumnDTO, len(cols))
	for i, c := range cols {
		out[i] = ColumnDTO{ID: c.ID, Title: c.Title, Order: c.Order}
	}
	return out
}
