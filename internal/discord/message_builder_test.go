package discord

import (
	"encoding/json"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMessageBuilder_SetMessage(t *testing.T) {
	b := NewMessageBuilder().WithContent("old")
	b.SetMessage(Message{Content: "new", TTS: true})
	assert.Equal(t, Message{Content: "new", TTS: true}, b.Message())

	other := NewMessageBuilder().WithContent("from builder")
	b.SetMessage(other)
	assert.Equal(t, "from builder", b.Message().Content)
	assert.False(t, b.Message().TTS)

	b.SetMessage(nil)
	assert.Equal(t, Message{}, b.Message())
}

func TestMessageBuilder_AddEmbedFlattensAndReplaces(t *testing.T) {
	first := NewEmbed().WithTitle("one", "")
	second := NewEmbed().WithTitle("two", "")
	raw := EmbedObject{Title: "three"}

	b := NewMessageBuilder().AddEmbed(
		first,
		EmbedList{second, nil},
		raw,
		EmbedObjectList{{Title: "four"}, {Title: "five"}},
	)

	titles := make([]string, 0)
	for _, e := range b.Message().Embeds {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, titles)

	b.AddEmbed(NewEmbed().WithTitle("only", ""))
	require.Len(t, b.Message().Embeds, 1)
	assert.Equal(t, "only", b.Message().Embeds[0].Title)

	first.WithTitle("changed", "")
	assert.Equal(t, "only", b.Message().Embeds[0].Title)
}

func TestMessageBuilder_AddFilesMerges(t *testing.T) {
	fb1 := NewFileBuilder().Add("a.txt", []byte("aaa"))
	fb2 := NewFileBuilder().Add("b.txt", []byte("bbb")).Add("c.txt", []byte("ccc"))

	b := NewMessageBuilder().AddFiles(fb1).AddFiles(fb2)
	require.NotNil(t, b.Files())

	names := make([]string, 0)
	for _, f := range b.Files().Files() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names)

	fb1.Add("d.txt", []byte("ddd"))
	fb1.files[0].Data[0] = 'z'
	fb2.Remove("b.txt")

	assert.Equal(t, 3, b.Files().Len())
	file, ok := b.Files().Find("a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("aaa"), file.Data)
	assert.Equal(t, 1, fb2.Len())
}

func TestMessageBuilder_AddComponentRow(t *testing.T) {
	yes := discordgo.Button{Label: "Yes", Style: discordgo.SuccessButton, CustomID: "yes"}
	no := discordgo.Button{Label: "No", Style: discordgo.DangerButton, CustomID: "no"}

	b := NewMessageBuilder().
		AddComponentRow(Component(yes), Components(no), NewButton("Docs").WithURL("https://docs.example")).
		AddComponentRow(NewSelectMenu("pick").AddOption("A", "a", "", true))

	rows := b.Message().Components
	require.Len(t, rows, 2)
	require.Len(t, rows[0].Components, 3)
	assert.Equal(t, yes, rows[0].Components[0])
	assert.Equal(t, no, rows[0].Components[1])
	require.Len(t, rows[1].Components, 1)

	rendered, err := b.Render()
	require.NoError(t, err)
	body, err := MarshalJSON(rendered.Message)
	require.NoError(t, err)

	assert.Equal(t, int64(1), gjson.GetBytes(body, "components.0.type").Int())
	assert.Equal(t, int64(2), gjson.GetBytes(body, "components.0.components.0.type").Int())
	assert.Equal(t, "no", gjson.GetBytes(body, "components.0.components.1.custom_id").String())
	assert.Equal(t, "https://docs.example", gjson.GetBytes(body, "components.0.components.2.url").String())
	assert.Equal(t, "pick", gjson.GetBytes(body, "components.1.components.0.custom_id").String())
}

func TestMessageBuilder_RenderWithoutFiles(t *testing.T) {
	b := NewMessageBuilder().WithContent("hi").AddEmbed(NewEmbed().WithTitle("t", ""))

	rendered, err := b.Render()
	require.NoError(t, err)
	assert.False(t, rendered.IsMultipart())
	assert.Nil(t, rendered.Form)
	assert.Equal(t, "hi", rendered.Message.Content)

	empty := NewMessageBuilder().AddFiles(NewFileBuilder())
	rendered, err = empty.Render()
	require.NoError(t, err)
	assert.False(t, rendered.IsMultipart())
}

func TestMessageBuilder_RenderWithFiles(t *testing.T) {
	b := NewMessageBuilder().
		WithContent("<b>report</b> & more").
		AddFiles(NewFileBuilder().Add("report.txt", []byte("data")))

	rendered, err := b.Render()
	require.NoError(t, err)
	require.True(t, rendered.IsMultipart())

	payload, ok := rendered.Form.Field("payload_json")
	require.True(t, ok)
	expected, err := MarshalJSON(b.Message())
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(payload.Data))
	assert.Equal(t, `{"content":"<b>report</b> & more"}`, string(payload.Data))

	parts := decodeForm(t, rendered.Form)
	require.Len(t, parts, 2)
	assert.Equal(t, "file", parts[0].name)
	assert.Equal(t, "report.txt", parts[0].filename)
	assert.Equal(t, "payload_json", parts[1].name)
}

func TestMessageBuilder_RenderTwiceDoesNotDuplicatePayload(t *testing.T) {
	b := NewMessageBuilder().AddFiles(NewFileBuilder().Add("a", []byte("a")).Add("b", []byte("b")))

	_, err := b.Render()
	require.NoError(t, err)
	rendered, err := b.Render()
	require.NoError(t, err)
	assert.Len(t, rendered.Form.Fields(), 3)
}

func TestMarshalJSON_EmptyMessage(t *testing.T) {
	body, err := MarshalJSON(Message{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))

	body, err = MarshalJSON(Message{Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, `{"content":"hi"}`, string(body))
}

func TestMessageBuilder_SetMessageNilBuilder(t *testing.T) {
	var other *MessageBuilder
	b := NewMessageBuilder().WithContent("old").SetMessage(other)
	assert.Equal(t, Message{}, b.Message())
}

func TestMessage_ExtraKeys(t *testing.T) {
	raw := `{"content":"hi","poll":{"question":{"text":"lunch?"}},"attachments":[{"id":0,"description":"alt text"}]}`

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	assert.Equal(t, "hi", msg.Content)
	require.Len(t, msg.Extra, 2)
	assert.NotContains(t, msg.Extra, "content")

	body, err := MarshalJSON(msg)
	require.NoError(t, err)
	assert.Equal(t, `{"content":"hi","attachments":[{"id":0,"description":"alt text"}],"poll":{"question":{"text":"lunch?"}}}`, string(body))
}

func TestMessage_ExtraDoesNotOverrideTypedFields(t *testing.T) {
	msg := Message{Extra: map[string]json.RawMessage{
		"content": json.RawMessage(`"shadowed"`),
		"nonce":   json.RawMessage(`"abc"`),
	}}

	body, err := MarshalJSON(msg)
	require.NoError(t, err)
	assert.Equal(t, `{"nonce":"abc"}`, string(body))

	msg.Content = "<b>"
	body, err = MarshalJSON(msg)
	require.NoError(t, err)
	assert.Equal(t, `{"content":"<b>","nonce":"abc"}`, string(body))
}

func TestMessageBuilder_RenderWithFilesKeepsAttachments(t *testing.T) {
	msg := Message{Content: "report", Extra: map[string]json.RawMessage{
		"attachments": json.RawMessage(`[{"id":0,"description":"scan output"}]`),
	}}
	b := NewMessageBuilderFrom(msg).AddFiles(NewFileBuilder().Add("scan.txt", []byte("ok")))

	rendered, err := b.Render()
	require.NoError(t, err)
	payload, ok := rendered.Form.Field("payload_json")
	require.True(t, ok)
	assert.Equal(t, "scan output", gjson.GetBytes(payload.Data, "attachments.0.description").String())
}
