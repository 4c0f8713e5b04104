package markup

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, line string, st State) Outcome {
	t.Helper()
	out := ClassifyLine(line, st, DefaultOptions())
	require.NotNil(t, out.Block, "line %q produced no block", line)
	return out
}

func TestClassifyHeaders(t *testing.T) {
	out := classify(t, "# Jane Doe", State{})
	assert.Equal(t, Title{Source: Source{Raw: "# Jane Doe"}, Text: "Jane Doe"}, out.Block)

	out = classify(t, "## Experience", State{})
	assert.Equal(t, KindSectionHeader, out.Block.Kind())
	assert.Equal(t, "Experience", out.Block.(SectionHeader).Text)

	out = classify(t, "### Projects", State{})
	assert.Equal(t, KindSubsectionHeader, out.Block.Kind())
	assert.Equal(t, "Projects", out.Block.(SubsectionHeader).Text)
}

func TestSectionFlagToggles(t *testing.T) {
	out := classify(t, "## Education", State{})
	assert.True(t, out.State.InEducation)

	out = classify(t, "## Experience", out.State)
	assert.False(t, out.State.InEducation)
}

func TestSectionFlagIsExactMatch(t *testing.T) {
	for _, header := range []string{"## education", "## Education & Training", "## Educational"} {
		out := classify(t, header, State{InEducation: true})
		assert.False(t, out.State.InEducation, header)
	}
	out := classify(t, "## **Education**", State{})
	assert.True(t, out.State.InEducation)
}

func TestSectionFlagSurvivesOtherBlocks(t *testing.T) {
	st := State{InEducation: true}
	for _, line := range []string{"### Minor", "- bullet", "Email: a@b.c", "", "prose", "# Title"} {
		st = classify(t, line, st).State
		assert.True(t, st.InEducation, "after %q", line)
	}
}

func TestEducationEntryInsideSection(t *testing.T) {
	line := "**BSc Computer Science, MIT, 2020**"
	out := classify(t, line, State{InEducation: true})
	require.IsType(t, EducationEntry{}, out.Block)
	entry := out.Block.(EducationEntry)
	assert.Equal(t, "BSc Computer Science", entry.Degree)
	assert.Equal(t, "MIT, 2020", entry.InstitutionAndDate)
	assert.Nil(t, out.Issue)
}

func TestEducationLineOutsideSectionIsParagraph(t *testing.T) {
	out := classify(t, "**BSc Computer Science, MIT, 2020**", State{})
	require.IsType(t, Paragraph{}, out.Block)
	assert.Equal(t, "BSc Computer Science, MIT, 2020", out.Block.(Paragraph).Text)
}

func TestEducationWithoutCommaDegrades(t *testing.T) {
	out := Classify(Source{Line: 7, Raw: "**Self-taught**"}, State{InEducation: true}, DefaultOptions())
	require.IsType(t, Paragraph{}, out.Block)
	assert.Equal(t, "Self-taught", out.Block.(Paragraph).Text)
	require.NotNil(t, out.Issue)
	assert.Equal(t, 7, out.Issue.Line)
	assert.Equal(t, "education", out.Issue.Rule)
	assert.True(t, out.State.InEducation)
}

func TestEducationDegreeWithInnerMarkers(t *testing.T) {
	out := classify(t, "**MSc**, Stanford University, 2022", State{InEducation: true})
	entry := out.Block.(EducationEntry)
	assert.Equal(t, "MSc", entry.Degree)
	assert.Equal(t, "Stanford University, 2022", entry.InstitutionAndDate)
}

func TestBulletAndRows(t *testing.T) {
	out := classify(t, "- Shipped **three** releases", State{})
	assert.Equal(t, "Shipped three releases", out.Block.(BulletItem).Text)

	out = classify(t, "- Led team | Managed 5 engineers", State{})
	require.IsType(t, MultiColumnRow{}, out.Block)
	assert.Equal(t, []Cell{{Text: "Led team"}, {Text: "Managed 5 engineers"}}, out.Block.(MultiColumnRow).Cells)

	out = classify(t, "- a|b", State{})
	assert.IsType(t, BulletItem{}, out.Block)
}

func TestBulletWinsOverField(t *testing.T) {
	out := classify(t, "- Email: jane@doe.com", State{})
	assert.IsType(t, BulletItem{}, out.Block)
}

func TestFieldVersusParagraph(t *testing.T) {
	out := classify(t, "Email: jane@doe.com", State{})
	require.IsType(t, Field{}, out.Block)
	assert.Equal(t, "Email", out.Block.(Field).Label)
	assert.Equal(t, "jane@doe.com", out.Block.(Field).Value)

	out = classify(t, "Built scalable systems: processed 10:30 daily batches", State{})
	assert.IsType(t, Paragraph{}, out.Block)

	out = classify(t, "**Phone:** +1 555 0100", State{})
	require.IsType(t, Field{}, out.Block)
	assert.Equal(t, "Phone", out.Block.(Field).Label)
	assert.Equal(t, "+1 555 0100", out.Block.(Field).Value)
}

func TestFieldLabelThresholdIsConfigurable(t *testing.T) {
	line := "Built scalable systems: yes"
	opts := DefaultOptions()
	opts.LabelMaxLen = 40
	out := ClassifyLine(line, State{}, opts)
	assert.IsType(t, Field{}, out.Block)

	// 14 runes is below the default bound, 15 is not.
	assert.IsType(t, Field{}, classify(t, strings.Repeat("a", 14)+": v", State{}).Block)
	assert.IsType(t, Paragraph{}, classify(t, strings.Repeat("a", 15)+": v", State{}).Block)
}

func TestBlankLineIsSpacer(t *testing.T) {
	out := classify(t, "", State{})
	assert.Equal(t, KindSpacer, out.Block.Kind())
}

func TestRulesOrder(t *testing.T) {
	var names []string
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"title", "section", "subsection", "education", "bullet", "field", "spacer", "paragraph"}, names)
}

func TestSplitField(t *testing.T) {
	label, value, ok := SplitField("Web: https://jane.dev", DefaultLabelMaxLen)
	require.True(t, ok)
	assert.Equal(t, "Web", label)
	assert.Equal(t, "https://jane.dev", value)

	_, _, ok = SplitField("no colon here", DefaultLabelMaxLen)
	assert.False(t, ok)
}

func TestParseSampleDocument(t *testing.T) {
	src := strings.Join([]string{
		"# Jane Doe",
		"## Education",
		"**BSc Computer Science, MIT, 2020**",
		"## Experience",
		"- Led team | Managed 5 engineers",
		"Email: jane@doe.com",
	}, "\n")
	doc, err := ParseString(src, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 6)

	kinds := make([]Kind, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind())
	}
	assert.Equal(t, []Kind{KindTitle, KindSectionHeader, KindEducationEntry, KindSectionHeader, KindMultiColumnRow, KindField}, kinds)
	assert.Equal(t, "Jane Doe", doc.Title())
	assert.Equal(t, 3, doc.Blocks[2].Origin().Line)
	assert.Empty(t, doc.Issues)
}

func TestParseSanitizesAndTrims(t *testing.T) {
	doc, err := ParseString("   “Quoted” text —   \n\t## Education   ", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, `"Quoted" text -`, doc.Blocks[0].(Paragraph).Text)
	assert.Equal(t, "Education", doc.Blocks[1].(SectionHeader).Text)
}

func TestParseReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Parse(iotest.ErrReader(boom), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "education", KindEducationEntry.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
