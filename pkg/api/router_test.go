package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LENAX/autoflow-engine/pkg/api/dto"
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
	"github.com/LENAX/autoflow-engine/pkg/core/serializer"
	"github.com/LENAX/autoflow-engine/pkg/ident"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter 构建测试路由
func newTestRouter() *gin.Engine {
	registry := graph.NewRegistry()
	s := serializer.New(registry, ident.NewSequenceGenerator())
	return SetupRouter(s, registry, gin.TestMode, "test")
}

// postJSON 发送JSON请求
func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSerializeEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("序列化成功", func(t *testing.T) {
		w := postJSON(router, "/api/v1/workflows/serialize", dto.SerializeRequest{
			Name: "测试流程",
			Nodes: []graph.RawNode{
				{ID: "t1", Type: graph.NodeManualTrigger, Label: "开始"},
				{ID: "n2", Type: graph.NodeClickAction, Label: "点击"},
			},
			Edges: []graph.RawEdge{
				{ID: "e1", Source: "t1", Target: "n2"},
			},
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.APIResponse[serializer.SerializedWorkflow]
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "测试流程", resp.Data.Name)
		assert.Equal(t, []string{"t1", "n2"}, resp.Data.ExecutionOrder)
		require.Contains(t, resp.Data.DataFlow, "n2")
		assert.Equal(t, "t1", resp.Data.DataFlow["n2"].Context.ParentNodeID)
	})

	t.Run("循环依赖返回422", func(t *testing.T) {
		w := postJSON(router, "/api/v1/workflows/serialize", dto.SerializeRequest{
			Nodes: []graph.RawNode{
				{ID: "a", Type: graph.NodeClickAction},
				{ID: "b", Type: graph.NodeClickAction},
			},
			Edges: []graph.RawEdge{
				{ID: "e1", Source: "a", Target: "b"},
				{ID: "e2", Source: "b", Target: "a"},
			},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp dto.APIResponse[any]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 422, resp.Code)
		assert.Contains(t, resp.Message, "循环")
	})

	t.Run("请求体缺少nodes返回400", func(t *testing.T) {
		w := postJSON(router, "/api/v1/workflows/serialize", map[string]interface{}{
			"name": "没有节点",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestValidateEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("存在问题时HTTP仍为200", func(t *testing.T) {
		wf := serializer.SerializedWorkflow{
			Name: "坏流程",
			Nodes: []serializer.SerializedNode{
				{ID: "x", Type: graph.NodeClickAction, Label: "孤立点击", Dependencies: []string{}},
				{ID: "t1", Type: graph.NodeManualTrigger, Label: "开始", Dependencies: []string{}},
			},
		}

		w := postJSON(router, "/api/v1/workflows/validate", dto.ValidateRequest{Workflow: wf})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.APIResponse[serializer.ValidationResult]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Data.Valid)
		require.Len(t, resp.Data.Errors, 1)
		assert.Contains(t, resp.Data.Errors[0], "孤立点击")
	})
}

func TestDeserializeEndpoint(t *testing.T) {
	router := newTestRouter()

	// 先序列化再还原
	w := postJSON(router, "/api/v1/workflows/serialize", dto.SerializeRequest{
		Nodes: []graph.RawNode{
			{ID: "t1", Type: graph.NodeManualTrigger, Label: "开始", Position: graph.Position{X: 1, Y: 2}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var serialized dto.APIResponse[serializer.SerializedWorkflow]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &serialized))

	w = postJSON(router, "/api/v1/workflows/deserialize", dto.DeserializeRequest{Workflow: serialized.Data})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse[dto.DeserializeResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Nodes, 1)
	assert.Equal(t, "t1", resp.Data.Nodes[0].ID)
	assert.Equal(t, graph.Position{X: 1, Y: 2}, resp.Data.Nodes[0].Position)
}

func TestTemplatesEndpoint(t *testing.T) {
	router := newTestRouter()

	req, _ := http.NewRequest("GET", "/api/v1/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse[[]graph.NodeTemplate]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data)

	types := make(map[string]bool)
	for _, tpl := range resp.Data {
		types[tpl.Type] = true
	}
	assert.True(t, types[graph.NodeManualTrigger])
	assert.True(t, types[graph.NodeClickAction])
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse[dto.HealthResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Data.Status)
	assert.Equal(t, "test", resp.Data.Version)
}
