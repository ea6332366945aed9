package typesystem

// TypeEnv maps an identifier name to its scheme (C1 "Type environment").
type TypeEnv map[string]Scheme

// Extend returns a new environment with name bound to scheme, shadowing any
// previous binding (last write wins).
func (env TypeEnv) Extend(name string, sc Scheme) TypeEnv {
	out := make(TypeEnv, len(env)+1)
	for k, v := range env {
		out[k] = v
	}
	out[name] = sc
	return out
}

// ExtendMany extends the environment with every binding in more, later
// entries winning over earlier ones and over env.
func (env TypeEnv) ExtendMany(more map[string]Scheme) TypeEnv {
	out := make(TypeEnv, len(env)+len(more))
	for k, v := range env {
		out[k] = v
	}
	for k, v := range more {
		out[k] = v
	}
	return out
}

// Union merges two environments, left-biased: env's own bindings win over
// other's on collision.
func (env TypeEnv) Union(other TypeEnv) TypeEnv {
	out := make(TypeEnv, len(env)+len(other))
	for k, v := range other {
		out[k] = v
	}
	for k, v := range env {
		out[k] = v
	}
	return out
}

// Apply lifts substitution over every scheme in the environment.
func (env TypeEnv) Apply(s Subst) TypeEnv {
	out := make(TypeEnv, len(env))
	for k, v := range env {
		out[k] = v.Apply(s)
	}
	return out
}

// FreeTypeVariables unions the free variables of every scheme bound in the
// environment.
func (env TypeEnv) FreeTypeVariables() []string {
	var out []string
	for _, v := range env {
		out = union(out, v.FreeTypeVariables())
	}
	return out
}

// Generalize quantifies over every free variable of t that does not also
// appear free in env, producing the most general scheme inferable for t
// under env (C5 "Generalisation").
func Generalize(env TypeEnv, t Type) Scheme {
	envFtv := make(map[string]bool)
	for _, v := range env.FreeTypeVariables() {
		envFtv[v] = true
	}
	var vars []string
	for _, v := range t.FreeTypeVariables() {
		if !envFtv[v] {
			vars = append(vars, v)
		}
	}
	return Scheme{Vars: vars, Type: t}
}

// FreshNamer produces a new, never-before-used type-variable name each call.
// The inferencer's monotonically increasing counter (C5/C6) implements this.
type FreshNamer func() string

// Instantiate replaces every quantified variable of sc with a fresh one,
// using fresh to mint new names (C5 "Generalisation").
func Instantiate(sc Scheme, fresh FreshNamer) Type {
	if len(sc.Vars) == 0 {
		return sc.Type
	}
	s := make(Subst, len(sc.Vars))
	for _, v := range sc.Vars {
		s[v] = Var{Name: fresh()}
	}
	return sc.Type.Apply(s)
}
