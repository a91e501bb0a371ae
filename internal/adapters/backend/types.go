package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/afyajamii/afya-cli/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse tolerates both field names the backend has used for the
// issued credential.
type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

func (r loginResponse) token() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

type signupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	FullName    string `json:"full_name"`
	Password    string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type vitalsRequest struct {
	Age            float64 `json:"Age"`
	SystolicBP     float64 `json:"SystolicBP"`
	DiastolicBP    float64 `json:"DiastolicBP"`
	BS             float64 `json:"BS"`
	BodyTemp       float64 `json:"BodyTemp"`
	HeartRate      float64 `json:"HeartRate"`
	BodyTempUnit   string  `json:"body_temp_unit,omitempty"`
	PatientHistory string  `json:"patient_history,omitempty"`
	AccountType    string  `json:"account_type,omitempty"`
}

type chatRequest struct {
	Question string `json:"question"`
}

// featureImportances normalizes the two encodings the backend has emitted: a
// JSON object of feature weights, or a JSON string containing that object.
// Any other shape is an explicit decode error, never a silent default.
type featureImportances map[string]float64

func (f *featureImportances) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("feature_importances is empty")
	}

	switch trimmed[0] {
	case 'n':
		*f = nil
		return nil
	case '{':
		var weights map[string]float64
		if err := json.Unmarshal(trimmed, &weights); err != nil {
			return fmt.Errorf("decode feature_importances object: %w", err)
		}
		*f = weights
		return nil
	case '"':
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return fmt.Errorf("decode feature_importances string: %w", err)
		}
		var weights map[string]float64
		if err := json.Unmarshal([]byte(encoded), &weights); err != nil {
			return fmt.Errorf("decode feature_importances string payload: %w", err)
		}
		*f = weights
		return nil
	default:
		return fmt.Errorf("unrecognized feature_importances encoding: %s", trimmed)
	}
}

type mlOutputSchema struct {
	RiskLabel          string             `json:"risk_label"`
	Probability        float64            `json:"probability"`
	FeatureImportances featureImportances `json:"feature_importances"`
}

type adviceSchema struct {
	Advice    string `json:"advice"`
	Timestamp string `json:"timestamp"`
}

type vitalsResponseSchema struct {
	UserID       int64          `json:"user_id"`
	SubmissionID int64          `json:"submission_id"`
	Timestamp    string         `json:"timestamp"`
	MLOutput     mlOutputSchema `json:"ml_output"`
	LLMAdvice    adviceSchema   `json:"llm_advice"`
}

type vitalsRecordSchema struct {
	ID             int64   `json:"id"`
	CreatedAt      string  `json:"created_at"`
	Age            float64 `json:"age"`
	SystolicBP     float64 `json:"systolic_bp"`
	DiastolicBP    float64 `json:"diastolic_bp"`
	BS             float64 `json:"bs"`
	BodyTemp       float64 `json:"body_temp"`
	BodyTempUnit   string  `json:"body_temp_unit"`
	HeartRate      float64 `json:"heart_rate"`
	PatientHistory string  `json:"patient_history"`
	MLRiskLabel    string  `json:"ml_risk_label"`
	MLProbability  float64 `json:"ml_probability"`
}

type conversationSchema struct {
	ID          int64  `json:"id"`
	CreatedAt   string `json:"created_at"`
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
}

type errorSchema struct {
	Detail string `json:"detail"`
}

func fromVitalsResponse(schema vitalsResponseSchema) domain.VitalsResult {
	return domain.VitalsResult{
		UserID:       schema.UserID,
		SubmissionID: schema.SubmissionID,
		Timestamp:    parseTime(schema.Timestamp),
		Assessment: domain.RiskAssessment{
			RiskLabel:          schema.MLOutput.RiskLabel,
			Probability:        schema.MLOutput.Probability,
			FeatureImportances: schema.MLOutput.FeatureImportances,
		},
		Advice: fromAdvice(schema.LLMAdvice),
	}
}

func fromAdvice(schema adviceSchema) domain.Advice {
	return domain.Advice{
		Text:      schema.Advice,
		Timestamp: parseTime(schema.Timestamp),
	}
}

func fromVitalsRecord(schema vitalsRecordSchema) domain.VitalsRecord {
	return domain.VitalsRecord{
		ID:             schema.ID,
		CreatedAt:      parseTime(schema.CreatedAt),
		Age:            schema.Age,
		SystolicBP:     schema.SystolicBP,
		DiastolicBP:    schema.DiastolicBP,
		BloodSugar:     schema.BS,
		BodyTemp:       schema.BodyTemp,
		BodyTempUnit:   domain.TemperatureUnit(schema.BodyTempUnit),
		HeartRate:      schema.HeartRate,
		PatientHistory: schema.PatientHistory,
		RiskLabel:      schema.MLRiskLabel,
		Probability:    schema.MLProbability,
	}
}

func fromConversation(schema conversationSchema) domain.ConversationTurn {
	return domain.ConversationTurn{
		ID:        schema.ID,
		CreatedAt: parseTime(schema.CreatedAt),
		Question:  schema.UserMessage,
		Response:  schema.AIResponse,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
