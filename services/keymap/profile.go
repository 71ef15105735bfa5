package keymap

import (
	"strconv"

	"bigredbutton-go/errcode"
	"bigredbutton-go/types"
)

// Profile is a validated types.Profile with keys resolved.
type Profile struct {
	Name    string
	Mode    types.Mode
	KeepLit bool
	Keys    map[types.Trigger]Key
}

// Compile validates p: the mode must be known and every binding must name a
// trigger the mode can produce and a known key.
func Compile(p types.Profile) (Profile, error) {
	const op = "keymap.Compile"
	if !p.Mode.Valid() {
		return Profile{}, errcode.Wrap(errcode.InvalidParams, op, p.Name+": unknown mode "+strconv.Quote(string(p.Mode)), nil)
	}
	out := Profile{
		Name:    p.Name,
		Mode:    p.Mode,
		KeepLit: p.KeepLit,
		Keys:    make(map[types.Trigger]Key, len(p.Keys)),
	}
	allowed := p.Mode.Triggers()
	for trName, name := range p.Keys {
		tr := types.Trigger(trName)
		if !hasTrigger(allowed, tr) {
			return Profile{}, errcode.Wrap(errcode.InvalidParams, op,
				p.Name+": "+string(p.Mode)+" mode has no trigger "+strconv.Quote(string(tr)), nil)
		}
		k, err := ParseKey(name)
		if err != nil {
			return Profile{}, errcode.Wrap(errcode.InvalidParams, op, p.Name, err)
		}
		if k != KeyNone {
			out.Keys[tr] = k
		}
	}
	return out, nil
}

// CompileAll compiles one profile per program index. Fewer profiles than
// programs is an error; extras are ignored.
func CompileAll(ps []types.Profile) ([types.NumPrograms]Profile, error) {
	var out [types.NumPrograms]Profile
	if len(ps) < types.NumPrograms {
		return out, errcode.Wrap(errcode.InvalidParams, "keymap.CompileAll",
			"need "+strconv.Itoa(types.NumPrograms)+" profiles, have "+strconv.Itoa(len(ps)), nil)
	}
	for i := range out {
		p, err := Compile(ps[i])
		if err != nil {
			return out, err
		}
		out[i] = p
	}
	return out, nil
}

func hasTrigger(ts []types.Trigger, t types.Trigger) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}
