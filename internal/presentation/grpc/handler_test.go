package grpc_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/bibbank/screening-service/internal/application/dto"
	"github.com/bibbank/screening-service/internal/application/usecase"
	"github.com/bibbank/screening-service/internal/domain/service"
	screeninggrpc "github.com/bibbank/screening-service/internal/presentation/grpc"
	"github.com/bibbank/screening-service/pkg/auth"
	"github.com/bibbank/screening-service/pkg/events"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...events.DomainEvent) error { return nil }

type nopRecorder struct{}

func (nopRecorder) RiskAssessed(context.Context, string) {}
func (nopRecorder) DuplicateChecked(context.Context, bool) {}
func (nopRecorder) QueryClassified(context.Context, string) {}
func (nopRecorder) EventPublishFailed(context.Context, string) {}

func newUseCases(logger *slog.Logger) screeninggrpc.UseCases {
	score := usecase.NewScoreRisk(service.NewRiskScorer(), nopPublisher{}, nopRecorder{}, logger)
	return screeninggrpc.UseCases{
		ScoreRisk:       score,
		ScoreRiskBatch:  usecase.NewScoreRiskBatch(score, 2),
		DetectDuplicate: usecase.NewDetectDuplicate(service.NewDuplicateDetector(), nopPublisher{}, nopRecorder{}, logger),
		AnalyzeQuery:    usecase.NewAnalyzeQuery(service.NewQueryAnalyzer(), nopRecorder{}, logger),
		MatchBiometric:  usecase.NewMatchBiometric(),
	}
}

// startServer runs the screening server on an in-memory listener and returns
// a connected client.
func startServer(t *testing.T, jwt *auth.JWTService) *grpc.ClientConn {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := screeninggrpc.NewScreeningServiceHandler(newUseCases(logger), logger, jwt != nil)
	srv := screeninggrpc.NewServer(handler, screeninggrpc.ServerOptions{JWT: jwt}, logger)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func invoke(ctx context.Context, conn *grpc.ClientConn, method string, req, resp interface{}) error {
	return conn.Invoke(ctx, "/"+screeninggrpc.ServiceName+"/"+method, req, resp, grpc.CallContentSubtype("json"))
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestScreeningService_RoundTrip(t *testing.T) {
	conn := startServer(t, nil)
	ctx := testContext(t)

	t.Run("ScoreRisk", func(t *testing.T) {
		var resp dto.RiskScoreResponse
		err := invoke(ctx, conn, "ScoreRisk", &dto.ScoreRiskRequest{
			SubjectID:      "SUBJ-1",
			CriminalRecord: &dto.CriminalRecord{Convictions: 3, Severity: "high"},
			WatchList:      true,
		}, &resp)
		require.NoError(t, err)

		assert.Equal(t, 70.0, resp.Overall)
		assert.Equal(t, "HIGH", resp.Level)
		assert.Equal(t, 76.0, resp.Confidence)
		require.Len(t, resp.Breakdown, 2)
		assert.Equal(t, 30.0, resp.Breakdown[0].Score)
	})

	t.Run("ScoreRiskBatch", func(t *testing.T) {
		var resp dto.ScoreRiskBatchResponse
		err := invoke(ctx, conn, "ScoreRiskBatch", &dto.ScoreRiskBatchRequest{Profiles: []dto.ScoreRiskRequest{
			{SubjectID: "a", WatchList: true},
			{SubjectID: "b"},
		}}, &resp)
		require.NoError(t, err)

		require.Len(t, resp.Results, 2)
		assert.Equal(t, "a", resp.Results[0].SubjectID)
		assert.Equal(t, 40.0, resp.Results[0].Overall)
		assert.Equal(t, "b", resp.Results[1].SubjectID)
	})

	t.Run("DetectDuplicate", func(t *testing.T) {
		record := dto.IdentityRecord{
			Name:         "John Doe",
			DateOfBirth:  "1990-01-01",
			Nationality:  "Liberian",
			Fingerprints: []string{"fp-left-thumb"},
		}

		var resp dto.DuplicateVerdictResponse
		require.NoError(t, invoke(ctx, conn, "DetectDuplicate", &dto.DetectDuplicateRequest{RecordA: record, RecordB: record}, &resp))

		assert.True(t, resp.IsDuplicate)
		assert.Equal(t, 99.0, resp.Confidence)
	})

	t.Run("AnalyzeQuery", func(t *testing.T) {
		var resp dto.QueryAnalysisResponse
		require.NoError(t, invoke(ctx, conn, "AnalyzeQuery", &dto.AnalyzeQueryRequest{Query: "find the watchlist report"}, &resp))

		assert.Equal(t, "search", resp.Intent.Intent)
		assert.Equal(t, 85.0, resp.Intent.Confidence)
	})

	t.Run("MatchBiometric", func(t *testing.T) {
		var resp dto.MatchBiometricResponse
		require.NoError(t, invoke(ctx, conn, "MatchBiometric", &dto.MatchBiometricRequest{
			SubjectID:         "SUBJ-001",
			FingerprintSample: "fp-sample",
		}, &resp))

		require.NotNil(t, resp.FingerprintScore)
		assert.Equal(t, 96, *resp.FingerprintScore)
		assert.Nil(t, resp.FaceScore)
	})

	t.Run("invalid input maps to InvalidArgument", func(t *testing.T) {
		var resp dto.RiskScoreResponse
		err := invoke(ctx, conn, "ScoreRisk", &dto.ScoreRiskRequest{OverstayDays: -5}, &resp)

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("health check is serving", func(t *testing.T) {
		resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: screeninggrpc.ServiceName})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	})
}

func TestScreeningService_Authorization(t *testing.T) {
	jwt, err := auth.NewJWTService(auth.JWTConfig{Secret: "test-secret", Issuer: "bib-test", Expiration: time.Minute})
	require.NoError(t, err)

	conn := startServer(t, jwt)

	withRoles := func(t *testing.T, roles ...string) context.Context {
		t.Helper()
		token, err := jwt.GenerateToken("investigator-7", "", roles)
		require.NoError(t, err)
		return metadata.AppendToOutgoingContext(testContext(t), "authorization", "Bearer "+token)
	}

	tests := []struct {
		name   string
		method string
		req    interface{}
		resp   interface{}
		roles  []string
		want   codes.Code
	}{
		{
			name: "missing token", method: "ScoreRisk",
			req: &dto.ScoreRiskRequest{}, resp: &dto.RiskScoreResponse{},
			want: codes.Unauthenticated,
		},
		{
			name: "analyst may score", method: "ScoreRisk",
			req: &dto.ScoreRiskRequest{}, resp: &dto.RiskScoreResponse{},
			roles: []string{auth.RoleAnalyst}, want: codes.OK,
		},
		{
			name: "auditor may not score", method: "ScoreRisk",
			req: &dto.ScoreRiskRequest{}, resp: &dto.RiskScoreResponse{},
			roles: []string{auth.RoleAuditor}, want: codes.PermissionDenied,
		},
		{
			name: "auditor may analyze queries", method: "AnalyzeQuery",
			req: &dto.AnalyzeQueryRequest{Query: "summary of alerts"}, resp: &dto.QueryAnalysisResponse{},
			roles: []string{auth.RoleAuditor}, want: codes.OK,
		},
		{
			name: "api client may not analyze queries", method: "AnalyzeQuery",
			req: &dto.AnalyzeQueryRequest{Query: "summary of alerts"}, resp: &dto.QueryAnalysisResponse{},
			roles: []string{auth.RoleAPIClient}, want: codes.PermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			if tt.roles != nil {
				ctx = withRoles(t, tt.roles...)
			}

			err := invoke(ctx, conn, tt.method, tt.req, tt.resp)
			assert.Equal(t, tt.want, status.Code(err))
		})
	}

	t.Run("health check skips authentication", func(t *testing.T) {
		_, err := healthpb.NewHealthClient(conn).Check(testContext(t), &healthpb.HealthCheckRequest{})
		assert.NoError(t, err)
	})
}
