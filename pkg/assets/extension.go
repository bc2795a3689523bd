package assets

import (
	"github.com/xelivous-go/gm8reader/pkg/bitreader"
	"github.com/xelivous-go/gm8reader/pkg/model"
)

// DeserializeExtension reads one extension record (§4.6 step 6: extensions
// are not zlib-framed as a block, each is its own inner structure read
// directly off the shared cursor).
func DeserializeExtension(cur *bitreader.Cursor) (model.Extension, error) {
	var ext model.Extension
	var err error

	if ext.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return ext, err
	}
	if ext.FolderName, err = cur.ReadPascalStringAsString(); err != nil {
		return ext, err
	}

	fileCount, err := cur.ReadU32()
	if err != nil {
		return ext, err
	}
	ext.Files = make([]model.ExtensionFile, fileCount)
	for i := range ext.Files {
		f, err := deserializeExtensionFile(cur)
		if err != nil {
			return ext, err
		}
		ext.Files[i] = f
	}
	return ext, nil
}

func deserializeExtensionFile(cur *bitreader.Cursor) (model.ExtensionFile, error) {
	var f model.ExtensionFile
	var err error

	if f.FileName, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}
	kind, err := cur.ReadI32()
	if err != nil {
		return f, err
	}
	f.Kind = kind
	if f.Initializer, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}
	if f.Finalizer, err = cur.ReadPascalStringAsString(); err != nil {
		return f, err
	}

	fnCount, err := cur.ReadU32()
	if err != nil {
		return f, err
	}
	f.Functions = make([]model.ExtensionFunction, fnCount)
	for i := range f.Functions {
		fn, err := deserializeExtensionFunction(cur)
		if err != nil {
			return f, err
		}
		f.Functions[i] = fn
	}

	constCount, err := cur.ReadU32()
	if err != nil {
		return f, err
	}
	f.Constants = make([]model.ExtensionConstant, constCount)
	for i := range f.Constants {
		name, err := cur.ReadPascalStringAsString()
		if err != nil {
			return f, err
		}
		value, err := cur.ReadPascalStringAsString()
		if err != nil {
			return f, err
		}
		f.Constants[i] = model.ExtensionConstant{Name: name, Value: value}
	}

	return f, nil
}

func deserializeExtensionFunction(cur *bitreader.Cursor) (model.ExtensionFunction, error) {
	var fn model.ExtensionFunction
	var err error

	if fn.Name, err = cur.ReadPascalStringAsString(); err != nil {
		return fn, err
	}
	if fn.ExternalName, err = cur.ReadPascalStringAsString(); err != nil {
		return fn, err
	}
	if fn.Convention, err = cur.ReadI32(); err != nil {
		return fn, err
	}

	argCount, err := cur.ReadU32()
	if err != nil {
		return fn, err
	}
	fn.ArgTypes = make([]int32, argCount)
	for i := range fn.ArgTypes {
		if fn.ArgTypes[i], err = cur.ReadI32(); err != nil {
			return fn, err
		}
	}

	if fn.ReturnType, err = cur.ReadI32(); err != nil {
		return fn, err
	}
	return fn, nil
}
