package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Job</title><script>analytics()</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
<h1>Backend Engineer</h1>
<p>We are hiring a backend engineer.</p>
<ul><li>Go experience</li><li>PostgreSQL knowledge</li></ul>
</div>
<footer>Copyright</footer>
</body>
</html>`

func TestURL_FetchesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Backend Engineer")
}

func TestURL_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	require.Error(t, err)
}

func TestExtractJobText_UsesContentSelectorAndStripsNoise(t *testing.T) {
	text, err := ExtractJobText(samplePage)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Go experience")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "analytics")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	text, err := ExtractJobText("<html><body><p>Plain posting text.</p></body></html>")
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text.")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("too short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long enough content ", 50)))
}
