package scripture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/epistleapp/epistle/internal/entities"
)

const samplePage = `<html><body>
<font color=green><b> 10:1 </b></font> 형제들아 내 마음에 원하는 바와 하나님께 구하는 바는 이스라엘을 위함이니<br>
<font color=green><b> 10:2 </b></font> 내가 증거하노니 저희가 하나님께 열심이 있으나 지식을 좇은 것이 아니라<br>
<font color=green><b> 10:3 </b></font> 하나님의 의를 모르고 자기 의를 세우려고 힘써<br>
</body></html>`

func eucKR(t *testing.T, utf8 string) []byte {
	t.Helper()
	encoded, _, err := transform.String(korean.EUCKR.NewEncoder(), utf8)
	require.NoError(t, err)
	return []byte(encoded)
}

func TestClient_FetchChapter(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write(eucKR(t, samplePage))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	verses, err := client.FetchChapter(context.Background(), "rom", 10)
	require.NoError(t, err)
	require.Len(t, verses, 3)

	assert.Equal(t, 1, verses[0].Number)
	assert.Contains(t, verses[0].Text, "이스라엘을 위함이니")
	assert.Equal(t, 3, verses[2].Number)

	// Romans is book 45 in the source's numbering.
	assert.Contains(t, gotQuery, "VL=45")
	assert.Contains(t, gotQuery, "CN=10")
}

func TestClient_FetchChapter_UnknownBook(t *testing.T) {
	client := NewClient("http://example.invalid")

	_, err := client.FetchChapter(context.Background(), "xyz", 1)
	assert.Error(t, err)
}

func TestClient_FetchChapter_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body>nothing here</body></html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	verses, err := client.FetchChapter(context.Background(), "gal", 1)
	require.NoError(t, err)
	assert.Empty(t, verses)
}

func TestClient_FetchChapter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.FetchChapter(context.Background(), "gal", 1)
	assert.Error(t, err)
}

func TestBookCode(t *testing.T) {
	assert.Equal(t, "rom", BookCode("Romans"))
	assert.Equal(t, "th1", BookCode("1 Thessalonians"))
	assert.Equal(t, "phm", BookCode("Philemon"))
	// Unmapped names fall back to the first three letters.
	assert.Equal(t, "tob", BookCode("Tobit"))
}

func TestFormatPassage(t *testing.T) {
	passage := FormatPassage([]entities.Verse{
		{Number: 1, Text: "first verse"},
		{Number: 2, Text: "second verse"},
	})

	lines := strings.Split(passage, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1. first verse", lines[0])
	assert.Equal(t, "2. second verse", lines[1])
}
