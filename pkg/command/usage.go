package command

// UsageRow describes one entry of the help listing.
type UsageRow struct {
	Flags       string
	Description string
}

// Notes are printed above the command listing.
var Notes = []string{
	"* Values shown in parentheses () are placeholders for your own values; the parentheses are not typed",
	"* Values containing spaces must be quoted with \" or '",
	"* Key/value payloads use the double-colon separator (key::value), so single colons are safe inside values",
	"* Saving a request creates a directory named after it holding metadata.json, body.json and .marker; body.json can be edited by hand",
	"* Environment values are substituted into {placeholders}: with base_uri saved, -u={base_uri}/path works in uri, headers, form data and body",
}

// Usage returns the help listing in display order.
func Usage() []UsageRow {
	return []UsageRow{
		{"-h | --help", "Print the list of command options"},
		{"-v | --version", "Print version information"},
		{"init", "Initialize the current directory as a relay project"},
		{"print-env-all", "Print all environments with their values"},
		{"print-env", "Print the values of the selected environment"},
		{"print", "Print the response stored by the last call"},
		{"-t=(REST | WEBSOCKET | PROTO)", "Set the type of request"},
		{"-m=(GET | POST | DELETE | PUT | PATCH)", "Set the REST method, defaults to GET"},
		{"-u=(https://api.com:8080) | --uri=(https://api.com:8080)", "Set the URI of the request"},
		{"-h=(key::value) | --header=(key::value)", "Set a request header"},
		{"-b=('{\"name\": \"some name\"}') | --body=(...)", "Set the request body"},
		{"-fd=(key::value) | --form-data=(key::value)", "Set a form field; form data replaces the body when present"},
		{"-f | --file", "Write the response of a call to (name)/response.json"},
		{"-l | --log", "With -f, tag the response file name with a timestamp"},
		{"-p | --print", "When writing to a file, also print the response to the terminal"},
		{"-rf=(file.json) | --response-file=(file.json)", "Write the response to the given file"},
		{"-sec | --secure", "Send the project authorization for the current environment"},
		{"-s=(login) | --save=(login)", "Save the request into the project under a name"},
		{"-c=(login) | --call=(login)", "Call a previously saved request"},
		{"-sc=(login) | --save-and-call=(login)", "Save a request and call it immediately"},
		{"-d=(login) | --delete=(login)", "Delete a previously saved request"},
		{"-e=(int::base_uri::https://api.com) | --env=(...)", "Save an environment value, creating the environment if needed"},
		{"-ed=(int) | --env-delete=(int)", "Delete an environment"},
		{"-edv=(int::key) | --env-delete-value=(int::key)", "Delete a value from an environment"},
		{"-se=(int) | --select-env=(int)", "Select the current environment"},
		{"-auth=('Bearer token') | --authorization=('Bearer token')", "Set the authorization for the current environment, or the default one when none is selected"},
		{"-r-auth | --remove-authorization", "Remove the authorization for the current environment, or the default one"},
	}
}
