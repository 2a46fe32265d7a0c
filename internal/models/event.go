package models

type Event struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	Location         string  `json:"local" gorm:"column:local;not null"`
	Description      string  `json:"descricao" gorm:"column:descricao;type:text;not null"`
	Date             Date    `json:"data" gorm:"column:data;type:date;not null"`
	Operator         string  `json:"operador" gorm:"column:operador;not null"`
	Responsible      string  `json:"responsavel" gorm:"column:responsavel;not null"`
	ResponsiblePhone *string `json:"fone_resp" gorm:"column:fone_resp"`
	GeneratorID      uint    `json:"id_gerador" gorm:"column:id_gerador;not null;index"`
}

func (Event) TableName() string {
	return "evento"
}

// EventResponse is an event together with the generator it references.
type EventResponse struct {
	Event
	Generator *Generator `json:"gerador"`
}

type CreateEventRequest struct {
	Location         string  `json:"local" validate:"required,notblank"`
	Description      string  `json:"descricao" validate:"required"`
	Date             Date    `json:"data" validate:"required"`
	Operator         string  `json:"operador" validate:"required,notblank"`
	Responsible      string  `json:"responsavel" validate:"required,notblank"`
	ResponsiblePhone *string `json:"fone_resp" validate:"omitempty,max=32"`
	GeneratorID      uint    `json:"id_gerador" validate:"required"`
}

func (r CreateEventRequest) ToEvent() *Event {
	return &Event{
		Location:         r.Location,
		Description:      r.Description,
		Date:             r.Date,
		Operator:         r.Operator,
		Responsible:      r.Responsible,
		ResponsiblePhone: r.ResponsiblePhone,
		GeneratorID:      r.GeneratorID,
	}
}

// UpdateEventRequest carries only the fields to change. A nil field is left
// untouched.
type UpdateEventRequest struct {
	Location         *string `json:"local" validate:"omitnil,notblank"`
	Description      *string `json:"descricao"`
	Date             *Date   `json:"data"`
	Operator         *string `json:"operador" validate:"omitnil,notblank"`
	Responsible      *string `json:"responsavel" validate:"omitnil,notblank"`
	ResponsiblePhone *string `json:"fone_resp" validate:"omitempty,max=32"`
	GeneratorID      *uint   `json:"id_gerador" validate:"omitnil,min=1"`
}

// Apply copies the set fields onto e and returns the touched columns.
func (r UpdateEventRequest) Apply(e *Event) []string {
	var columns []string
	if r.Location != nil {
		e.Location = *r.Location
		columns = append(columns, "local")
	}
	if r.Description != nil {
		e.Description = *r.Description
		columns = append(columns, "descricao")
	}
	if r.Date != nil {
		e.Date = *r.Date
		columns = append(columns, "data")
	}
	if r.Operator != nil {
		e.Operator = *r.Operator
		columns = append(columns, "operador")
	}
	if r.Responsible != nil {
		e.Responsible = *r.Responsible
		columns = append(columns, "responsavel")
	}
	if r.ResponsiblePhone != nil {
		phone := *r.ResponsiblePhone
		e.ResponsiblePhone = &phone
		columns = append(columns, "fone_resp")
	}
	if r.GeneratorID != nil {
		e.GeneratorID = *r.GeneratorID
		columns = append(columns, "id_gerador")
	}
	return columns
}
