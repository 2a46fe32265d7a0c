package models

type Generator struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"nome" gorm:"column:nome;index;not null"`
	Description *string `json:"descricao" gorm:"column:descricao;type:text"`
}

func (Generator) TableName() string {
	return "gerador"
}

type CreateGeneratorRequest struct {
	Name        string  `json:"nome" validate:"required,notblank,max=255"`
	Description *string `json:"descricao"`
}

// UpdateGeneratorRequest carries only the fields to change. A nil field is
// left untouched.
type UpdateGeneratorRequest struct {
	Name        *string `json:"nome" validate:"omitnil,notblank,max=255"`
	Description *string `json:"descricao"`
}

// Apply copies the set fields onto g and returns the touched columns.
func (r UpdateGeneratorRequest) Apply(g *Generator) []string {
	var columns []string
	if r.Name != nil {
		g.Name = *r.Name
		columns = append(columns, "nome")
	}
	if r.Description != nil {
		desc := *r.Description
		g.Description = &desc
		columns = append(columns, "descricao")
	}
	return columns
}
