package math

import (
	"github.com/chewxy/math32"
	"github.com/korkuveren/MARS/engine/math/vector"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI float32 = 1.0 / K_PI_2
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07

	/** @brief Default tolerance of the approximate equality helpers. */
	K_COMPARE_EPSILON float32 = 1e-4
	/** @brief Squared length under which a direction is treated as zero. */
	K_NORMALIZE_EPSILON float32 = 1e-8
)

func ksqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func kabs(x float32) float32 {
	return math32.Abs(x)
}

func kacos(x float32) float32 {
	return math32.Acos(Clamp(x, -1, 1))
}

func ktan(x float32) float32 {
	return math32.Tan(x)
}

// ksincos uses the kernel polynomial so every backend agrees.
func ksincos(x float32) (float32, float32) {
	return vector.SinCosf(x)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float32) float32 {
	return (b-a)*t + a
}
