package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eys-55/infoman-quizzer/internal/content"
)

func TestRender_PlainText(t *testing.T) {
	segments := content.Render("Just a question with no blocks.")

	require.Len(t, segments, 1)
	assert.Equal(t, content.KindText, segments[0].Kind)
	assert.Equal(t, "Just a question with no blocks.", segments[0].Text)
}

func TestRender_CodeBlock(t *testing.T) {
	segments := content.Render("What does this print?\n[CODE=go]\nfmt.Println(\"hi\")\n[/CODE]")

	require.Len(t, segments, 2)
	assert.Equal(t, content.KindText, segments[0].Kind)
	assert.Equal(t, "What does this print?", segments[0].Text)
	assert.Equal(t, content.KindCode, segments[1].Kind)
	assert.Equal(t, "go", segments[1].Language)
	assert.Equal(t, `fmt.Println("hi")`, segments[1].Code)
}

func TestRender_CodeBlockDefaultLanguage(t *testing.T) {
	segments := content.Render("[CODE]\nls -la\n[/CODE]")

	require.Len(t, segments, 1)
	assert.Equal(t, "text", segments[0].Language)
	assert.Equal(t, "ls -la", segments[0].Code)
}

func TestRender_TableBlock(t *testing.T) {
	segments := content.Render(`Compare:
[TABLE]
Type | Zero value
---- | ----------
int | 0
string | ""
slice
[/TABLE]
Done.`)

	require.Len(t, segments, 3)
	assert.Equal(t, "Compare:", segments[0].Text)

	table := segments[1]
	assert.Equal(t, content.KindTable, table.Kind)
	assert.Equal(t, []string{"Type", "Zero value"}, table.Headers)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"int", "0"}, table.Rows[0])
	assert.Equal(t, []string{"slice", ""}, table.Rows[2], "short rows are padded to header width")

	assert.Equal(t, "Done.", segments[2].Text)
}

func TestRender_UnknownTagPassedThrough(t *testing.T) {
	segments := content.Render("[HINT]think hard[/HINT]")

	require.Len(t, segments, 1)
	assert.Equal(t, content.KindText, segments[0].Kind)
	assert.Equal(t, "[HINT]think hard[/HINT]", segments[0].Text)
}

func TestRender_UnclosedBlockIsText(t *testing.T) {
	segments := content.Render("before [CODE=go] no closing tag")

	require.Len(t, segments, 2)
	assert.Equal(t, "before [CODE=go]", segments[0].Text)
	assert.Equal(t, "no closing tag", segments[1].Text)
}

func TestRender_MalformedTableIsText(t *testing.T) {
	segments := content.Render("[TABLE]\nonly one line\n[/TABLE]")

	require.Len(t, segments, 1)
	assert.Equal(t, content.KindText, segments[0].Kind)
	assert.Contains(t, segments[0].Text, "only one line")
}

func TestRender_MultipleBlocks(t *testing.T) {
	segments := content.Render("[CODE=py]print(1)[/CODE] middle [CODE=go]fmt.Println(1)[/CODE]")

	require.Len(t, segments, 3)
	assert.Equal(t, "py", segments[0].Language)
	assert.Equal(t, "middle", segments[1].Text)
	assert.Equal(t, "go", segments[2].Language)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, content.Render(""))
	assert.NotNil(t, content.Render(""))
}
