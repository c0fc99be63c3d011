// Package mapper convierte entre DTOs de la API y entidades de dominio.
// Todas las funciones son puras: nil de entrada produce nil de salida y las
// variantes de lista devuelven siempre un slice no nil.
package mapper

// mapList aplica f elemento a elemento. Nunca devuelve nil.
func mapList[S, D any](in []S, f func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
