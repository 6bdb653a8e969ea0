package herald

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraphs",
			html: "<p>first</p><p>second</p>",
			want: "first\nsecond",
		},
		{
			name: "line breaks",
			html: "one<br>two<br/>three",
			want: "one\ntwo\nthree",
		},
		{
			name: "strips tags",
			html: `<div class="x"><h1>Title</h1><span>body</span></div>`,
			want: "Title\nbody",
		},
		{
			name: "entities",
			html: "<p>a &amp; b &lt;c&gt; &quot;d&quot;</p>",
			want: `a & b <c> "d"`,
		},
		{
			name: "table rows",
			html: "<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>",
			want: "a b\nc d",
		},
		{
			name: "empty",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, plainText(tt.html))
		})
	}
}
