package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		wantKind    Kind
		wantForm    Form
		wantPayload string
	}{
		{name: "help short", token: "-h", wantKind: Help},
		{name: "help long", token: "--help", wantKind: Help},
		{name: "version", token: "-v", wantKind: Version},
		{name: "init", token: "init", wantKind: Init},
		{name: "print env all", token: "print-env-all", wantKind: PrintEnvAll},
		{name: "print env", token: "print-env", wantKind: PrintEnv},
		{name: "print last call", token: "print", wantKind: PrintLastCall},
		{name: "type rest", token: "-t=REST", wantKind: TypeRest},
		{name: "type websocket long", token: "--type=WEBSOCKET", wantKind: TypeWebsocket},
		{name: "type proto", token: "-t=PROTO", wantKind: TypeProto},
		{name: "method patch", token: "--method=PATCH", wantKind: MethodPatch},
		{name: "file", token: "-f", wantKind: File},
		{name: "log", token: "--log", wantKind: LogResponse},
		{name: "also print", token: "-p", wantKind: AlsoPrintToTerminal},
		{name: "secure", token: "-sec", wantKind: Secure},
		{name: "remove auth", token: "--remove-authorization", wantKind: RemoveAuthorization},
		{name: "uri short", token: "-u=https://api.example.com", wantKind: Uri, wantForm: Short, wantPayload: "https://api.example.com"},
		{name: "uri long", token: "--uri=https://api.example.com", wantKind: Uri, wantForm: Long, wantPayload: "https://api.example.com"},
		{name: "header short", token: "-h=Accept::text/plain", wantKind: Header, wantPayload: "Accept::text/plain"},
		{name: "header long", token: "--header=Accept::text/plain", wantKind: Header, wantForm: Long, wantPayload: "Accept::text/plain"},
		{name: "body", token: `-b={"a":1}`, wantKind: Body, wantPayload: `{"a":1}`},
		{name: "empty body", token: "-b=", wantKind: Body, wantPayload: ""},
		{name: "form data", token: "-fd=user::ada", wantKind: FormData, wantPayload: "user::ada"},
		{name: "form data long", token: "--form-data=user::ada", wantKind: FormData, wantForm: Long, wantPayload: "user::ada"},
		{name: "response file", token: "-rf=out.json", wantKind: ResponseFile, wantPayload: "out.json"},
		{name: "response file long", token: "--response-file=out.json", wantKind: ResponseFile, wantForm: Long, wantPayload: "out.json"},
		{name: "save", token: "-s=login", wantKind: Save, wantPayload: "login"},
		{name: "call", token: "-c=login", wantKind: Call, wantPayload: "login"},
		{name: "call long", token: "--call=login", wantKind: Call, wantForm: Long, wantPayload: "login"},
		{name: "save and call", token: "-sc=login", wantKind: SaveAndCall, wantPayload: "login"},
		{name: "save and call long", token: "--save-and-call=login", wantKind: SaveAndCall, wantForm: Long, wantPayload: "login"},
		{name: "delete", token: "--delete=login", wantKind: Delete, wantForm: Long, wantPayload: "login"},
		{name: "env", token: "-e=prod::token::abc", wantKind: AddEnv, wantPayload: "prod::token::abc"},
		{name: "env delete", token: "-ed=prod", wantKind: RemoveEnv, wantPayload: "prod"},
		{name: "env delete value", token: "-edv=prod::token", wantKind: RemoveEnvValue, wantPayload: "prod::token"},
		{name: "env delete value long", token: "--env-delete-value=prod::token", wantKind: RemoveEnvValue, wantForm: Long, wantPayload: "prod::token"},
		{name: "select env", token: "-se=prod", wantKind: SelectEnv, wantPayload: "prod"},
		{name: "authorization", token: "-auth=Bearer x", wantKind: AddAuthorization, wantPayload: "Bearer x"},
		{name: "authorization long", token: "--authorization=Bearer x", wantKind: AddAuthorization, wantForm: Long, wantPayload: "Bearer x"},
		{name: "unknown flag", token: "--nope", wantKind: Invalid},
		{name: "unknown method", token: "-m=TRACE", wantKind: Invalid},
		{name: "lowercase type", token: "-t=rest", wantKind: Invalid},
		{name: "empty token", token: "", wantKind: Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Classify(tt.token)
			assert.Equal(t, tt.wantKind, cmd.Kind)
			assert.Equal(t, tt.token, cmd.Raw)
			assert.Equal(t, tt.wantForm, cmd.Form)
			assert.Equal(t, tt.wantPayload, cmd.Payload())
		})
	}
}

func TestClassify_ExactBeatsPrefix(t *testing.T) {
	// "-h" alone is help, "-h=" starts a header
	assert.Equal(t, Help, Classify("-h").Kind)
	assert.Equal(t, Header, Classify("-h=X::y").Kind)

	// "-sec" must not be read as a save named "ec"
	assert.Equal(t, Secure, Classify("-sec").Kind)
	assert.Equal(t, Save, Classify("-s=ec").Kind)
}

func TestClassify_ShortAndLongShareKind(t *testing.T) {
	for _, p := range prefixes {
		short := Classify(p.short + "x")
		long := Classify(p.long + "x")
		assert.Equal(t, p.kind, short.Kind, p.short)
		assert.Equal(t, p.kind, long.Kind, p.long)
		assert.Equal(t, "x", short.Payload())
		assert.Equal(t, "x", long.Payload())
	}
}

func TestCommand_Flag(t *testing.T) {
	assert.Equal(t, "--header=", Classify("--header=a::b").Flag())
	assert.Equal(t, "-f", Classify("-f").Flag())
}

func TestClassifyAll(t *testing.T) {
	cmds := ClassifyAll([]string{"-m=POST", "bogus", "-u=http://x"})
	assert.Len(t, cmds, 3)
	assert.Equal(t, MethodPost, cmds[0].Kind)
	assert.Equal(t, Invalid, cmds[1].Kind)
	assert.Equal(t, Uri, cmds[2].Kind)
}

func TestUsageCoversEveryFlag(t *testing.T) {
	rows := Usage()
	for _, p := range prefixes {
		found := false
		for _, row := range rows {
			if strings.Contains(row.Flags, p.short) {
				found = true
				break
			}
		}
		assert.True(t, found, "no usage row for %s", p.short)
	}
}
