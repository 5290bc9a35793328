package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, prompt, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func textResponse(text string, chunks ...*genai.GroundingChunk) *genai.GenerateContentResponse {
	cand := &genai.Candidate{
		Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
	}
	if len(chunks) > 0 {
		cand.GroundingMetadata = &genai.GroundingMetadata{GroundingChunks: chunks}
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{cand}}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	here := &models.GeoPoint{Latitude: 12.9352, Longitude: 77.6245}

	tests := []struct {
		name       string
		query      string
		location   *models.GeoPoint
		setupMock  func(*MockGenerator)
		wantKind   models.Kind
		wantPlaces int
		wantCites  int
		wantErr    bool
	}{
		{
			name:     "success with location",
			query:    "cheap PG in Koramangala",
			location: here,
			setupMock: func(m *MockGenerator) {
				m.On("GenerateResponse", mock.Anything,
					mock.MatchedBy(func(p string) bool { return strings.Contains(p, "cheap PG in Koramangala") }),
					mock.MatchedBy(func(c *genai.GenerateContentConfig) bool {
						return c.ToolConfig != nil && *c.ToolConfig.RetrievalConfig.LatLng.Latitude == here.Latitude
					}),
				).Return(textResponse(wellFormed, &genai.GroundingChunk{Maps: &genai.GroundingChunkMaps{URI: "https://maps.google.com/?cid=1"}}), nil).Once()
			},
			wantPlaces: 2,
			wantCites:  1,
		},
		{
			name:  "success without location",
			query: "budget hotels",
			setupMock: func(m *MockGenerator) {
				m.On("GenerateResponse", mock.Anything, mock.Anything,
					mock.MatchedBy(func(c *genai.GenerateContentConfig) bool { return c.ToolConfig == nil }),
				).Return(textResponse("No block here"), nil).Once()
			},
		},
		{
			name:  "transport error",
			query: "food",
			setupMock: func(m *MockGenerator) {
				m.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp: connection refused")).Once()
			},
			wantErr:  true,
			wantKind: models.KindService,
		},
		{
			name:  "no candidates",
			query: "food",
			setupMock: func(m *MockGenerator) {
				m.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
					Return(&genai.GenerateContentResponse{}, nil).Once()
			},
			wantErr:  true,
			wantKind: models.KindService,
		},
		{
			name:      "blank query",
			query:     "   ",
			setupMock: func(m *MockGenerator) {},
			wantErr:   true,
			wantKind:  models.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			tt.setupMock(gen)
			svc := NewRecommendService(gen, "Bangalore", zap.NewNop())

			res, err := svc.Search(ctx, tt.query, tt.location)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, res)
				assert.Equal(t, tt.wantKind, models.KindOf(err))
			} else {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Len(t, res.Places, tt.wantPlaces)
				assert.Len(t, res.Citations, tt.wantCites)
				assert.NotContains(t, res.Text, "```json")
			}
			gen.AssertExpectations(t)
		})
	}
}

func TestSearch_HidesUpstreamDetail(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("googleapi: Error 403: API key leaked-key-123 invalid")).Once()
	svc := NewRecommendService(gen, "Bangalore", zap.NewNop())

	_, err := svc.Search(context.Background(), "pg", nil)

	require.Error(t, err)
	assert.Equal(t, models.GenericServiceMessage, models.UserMessage(err))
	assert.NotContains(t, models.UserMessage(err), "leaked-key-123")
}

func TestSearch_MalformedBlockIsNotAnError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).
		Return(textResponse("Try Indiranagar.\n```json\n[{\"name\": \"Cut off\"\n```"), nil).Once()
	svc := NewRecommendService(gen, "Bangalore", zap.NewNop())

	res, err := svc.Search(context.Background(), "pg", nil)

	require.NoError(t, err)
	assert.Empty(t, res.Places)
	assert.Equal(t, "Try Indiranagar.", res.Text)
	assert.Equal(t, models.ParseFailure, res.ParseOutcome)
}
