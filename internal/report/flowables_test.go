package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStory(t *testing.T) {
	t.Run("full story", func(t *testing.T) {
		story := BuildStory(BuildChart(sampleRecords), BuildTable(sampleRecords), "Overall Evaluation: ok")

		require.Len(t, story, 9)
		assert.Equal(t, NextTemplate{ID: TemplateBody}, story[0])
		assert.Equal(t, Heading{Text: "Score Overview"}, story[1])
		assert.IsType(t, chartFlowable{}, story[2])
		assert.Equal(t, Heading{Text: "Detailed Question Analysis"}, story[4])
		assert.IsType(t, tableFlowable{}, story[6])
		assert.IsType(t, Paragraph{}, story[8])
	})

	t.Run("remainder only", func(t *testing.T) {
		story := BuildStory(nil, nil, "Overall Evaluation: ok")

		require.Len(t, story, 2)
		assert.Equal(t, NextTemplate{ID: TemplateBody}, story[0])
		assert.IsType(t, Paragraph{}, story[1])
	})

	t.Run("nothing to show", func(t *testing.T) {
		story := BuildStory(nil, nil, "")
		assert.Equal(t, []Flowable{NextTemplate{ID: TemplateBody}}, story)
	})
}
