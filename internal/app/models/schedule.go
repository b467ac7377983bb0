package models

import (
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/openhours"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Schedule struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Interval     int                `json:"interval" bson:"interval"`
	Format       string             `json:"format" bson:"format"`
	OpenHours    []HoursStatement   `json:"openHours" bson:"openHours"`
	ControlHours []HoursStatement   `json:"controlHours" bson:"controlHours"`
	TimeModel    `bson:",inline"`
}

// HoursStatement stores each endpoint either as an epoch or as text so both
// kinds survive a round trip through BSON.
type HoursStatement struct {
	OpenEpoch   *int64 `json:"openEpoch,omitempty" bson:"openEpoch,omitempty"`
	OpenText    string `json:"openText,omitempty" bson:"openText,omitempty"`
	CloseEpoch  *int64 `json:"closeEpoch,omitempty" bson:"closeEpoch,omitempty"`
	CloseText   string `json:"closeText,omitempty" bson:"closeText,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

func NewHoursStatement(open, close openhours.Input, description string) HoursStatement {
	statement := HoursStatement{Description: description}
	statement.OpenEpoch, statement.OpenText = splitInput(open)
	statement.CloseEpoch, statement.CloseText = splitInput(close)
	return statement
}

func NewHoursStatements(statements []requests.HoursStatement) []HoursStatement {
	result := make([]HoursStatement, len(statements))
	for i, statement := range statements {
		result[i] = NewHoursStatement(statement.Open, statement.Close, statement.Description)
	}
	return result
}

func (s HoursStatement) OpenInput() openhours.Input {
	return joinInput(s.OpenEpoch, s.OpenText)
}

func (s HoursStatement) CloseInput() openhours.Input {
	return joinInput(s.CloseEpoch, s.CloseText)
}

func (s HoursStatement) ConvertIntoRequest() requests.HoursStatement {
	return requests.HoursStatement{
		Open:        s.OpenInput(),
		Close:       s.CloseInput(),
		Description: s.Description,
	}
}

func (s HoursStatement) ConvertIntoResponse() responses.HoursStatement {
	return responses.HoursStatement{
		Open:        s.OpenInput(),
		Close:       s.CloseInput(),
		Description: s.Description,
	}
}

func (s Schedule) ConvertIntoComputeRequest() *requests.ComputeOpenHours {
	request := &requests.ComputeOpenHours{
		Interval:     s.Interval,
		Format:       s.Format,
		OpenHours:    make([]requests.HoursStatement, len(s.OpenHours)),
		ControlHours: make([]requests.HoursStatement, len(s.ControlHours)),
	}
	for i, statement := range s.OpenHours {
		request.OpenHours[i] = statement.ConvertIntoRequest()
	}
	for i, statement := range s.ControlHours {
		request.ControlHours[i] = statement.ConvertIntoRequest()
	}
	return request
}

func (s Schedule) ConvertIntoResponse() responses.Schedule {
	response := responses.Schedule{
		ID:           s.ID.Hex(),
		Name:         s.Name,
		Interval:     s.Interval,
		Format:       s.Format,
		OpenHours:    make([]responses.HoursStatement, len(s.OpenHours)),
		ControlHours: make([]responses.HoursStatement, len(s.ControlHours)),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	for i, statement := range s.OpenHours {
		response.OpenHours[i] = statement.ConvertIntoResponse()
	}
	for i, statement := range s.ControlHours {
		response.ControlHours[i] = statement.ConvertIntoResponse()
	}
	return response
}

func splitInput(in openhours.Input) (*int64, string) {
	switch in.Kind {
	case openhours.InputInstant:
		epoch := in.Epoch
		return &epoch, ""
	case openhours.InputText:
		return nil, in.Text
	default:
		return nil, ""
	}
}

func joinInput(epoch *int64, text string) openhours.Input {
	if epoch != nil {
		return openhours.Instant(*epoch)
	}
	if text != "" {
		return openhours.Text(text)
	}
	return openhours.Input{}
}
