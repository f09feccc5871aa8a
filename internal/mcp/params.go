package mcp

// Param constructors used by toolset endpoint tables.

func RequiredParam(name, description string) Param {
	return Param{Name: name, Type: "string", Required: true, Description: description}
}

func StringParam(name, description string) Param {
	return Param{Name: name, Type: "string", Description: description}
}

func NumberParam(name, description string) Param {
	return Param{Name: name, Type: "number", Description: description}
}

func BoolParam(name, description string) Param {
	return Param{Name: name, Type: "boolean", Description: description}
}

func EnumParam(name, description string, values ...string) Param {
	return Param{Name: name, Type: "string", Description: description, Enum: values}
}
